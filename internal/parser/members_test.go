package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IshaanNene/ParlScrape/internal/types"
)

func newMembersExtractor() *MembersExtractor {
	return NewMembersExtractor(testBase, testLogger)
}

func TestMembersProfileAnchors(t *testing.T) {
	doc := makeDoc(t, `
		<div class="mp-list">
			<div class="card">
				<img src="/img/mp1.jpg" alt="">
				<a href="/mps/1">Hon. Ama Mensah</a>
				<p class="constituency">Tamale Central</p>
				<span class="party">NDC</span>
			</div>
			<div class="card">
				<a href="/mps/2">Kwame Asante</a>
				<p>Constituency: Bantama</p>
				<p>New Patriotic Party</p>
			</div>
			<div class="card">
				<a href="/mps/2">Kwame Asante</a>
				<p>Constituency: Bantama</p>
				<p>NPP</p>
			</div>
			<div class="card"><a href="/mps/3">View Profile</a></div>
		</div>`)

	got := newMembersExtractor().Extract(doc)

	require.Len(t, got, 2)
	assert.Equal(t, types.ParliamentMember{
		Name:         "Ama Mensah",
		Constituency: "Tamale Central",
		Party:        types.PartyNDC,
		ProfileURL:   "https://www.parliament.gh/mps/1",
		ImageURL:     "https://www.parliament.gh/img/mp1.jpg",
	}, got[0])
	assert.Equal(t, "Kwame Asante", got[1].Name)
	assert.Equal(t, "Bantama", got[1].Constituency)
	assert.Equal(t, types.PartyNPP, got[1].Party)
}

func TestMembersDashLines(t *testing.T) {
	doc := makeDoc(t, `
		<div>
			<p>Hon. Ama Mensah – Tamale Central – NDC</p>
			<p>Kofi Boateng - Asawase - NPP</p>
			<p>Kofi Boateng - Asawase - NPP</p>
		</div>`)

	got := newMembersExtractor().Extract(doc)

	require.Len(t, got, 2)
	assert.Equal(t, "Ama Mensah", got[0].Name)
	assert.Equal(t, "Tamale Central", got[0].Constituency)
	assert.Equal(t, types.PartyNDC, got[0].Party)
	assert.Equal(t, "Kofi Boateng", got[1].Name)
	assert.Equal(t, types.PartyNPP, got[1].Party)
}

func TestMembersLabelledBlocks(t *testing.T) {
	doc := makeDoc(t, `
		<div>
			<p>Name: Yaw Owusu</p>
			<p>Constituency: Ejisu</p>
			<p>Party: NPP</p>
			<p>Hon. Akua Sarpong</p>
			<p>Constituency: Madina</p>
			<p>Party: Independent</p>
		</div>`)

	got := newMembersExtractor().Extract(doc)

	require.Len(t, got, 2)
	assert.Equal(t, "Yaw Owusu", got[0].Name)
	assert.Equal(t, "Ejisu", got[0].Constituency)
	assert.Equal(t, types.PartyNPP, got[0].Party)
	assert.Equal(t, "Akua Sarpong", got[1].Name)
	assert.Equal(t, "Madina", got[1].Constituency)
	assert.Equal(t, types.PartyIndependent, got[1].Party)
}

func TestMembersNone(t *testing.T) {
	assert.Empty(t, newMembersExtractor().Extract(makeDoc(t, `<p>No members listed.</p>`)))
}

func TestLooksLikeName(t *testing.T) {
	assert.True(t, looksLikeName("Ama Mensah"))
	assert.True(t, looksLikeName("Kwame O'Brien-Asante"))
	assert.False(t, looksLikeName("Ama"))
	assert.False(t, looksLikeName("View Profile"))
	assert.False(t, looksLikeName("Page 2"))
	assert.False(t, looksLikeName(""))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Ama Mensah", cleanName("Hon. Ama  Mensah"))
	assert.Equal(t, "Alban Bagbin", cleanName("Rt. Hon. Alban Bagbin"))
	assert.Equal(t, "Honore Dei", cleanName("Honore Dei"))
}
