package scraper

import (
	"time"

	"github.com/IshaanNene/ParlScrape/internal/parser"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

const sampleDateLayout = "02-01-2006"

// sampleBillRows are served when the bills listing cannot be scraped. Dates
// are relative to now so the sample covers every status.
func sampleBillRows(listURL string, now time.Time) []parser.BillRow {
	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(sampleDateLayout)
	}
	return []parser.BillRow{
		{Title: "National Health Insurance (Amendment) Bill", LaidBy: "Minister for Health", LaidOn: day(21), URL: listURL},
		{Title: "Fisheries and Aquaculture Bill", LaidBy: "Minister for Fisheries and Aquaculture", LaidOn: day(400), GazettedOn: day(380), URL: listURL},
		{Title: "Emergency Power Supply Bill", LaidBy: "Minister for Energy", LaidOn: day(9), URL: listURL},
		{Title: "Public Financial Management (Amendment) Bill", LaidBy: "Minister for Finance", LaidOn: day(290), URL: listURL},
		{Title: "Criminal Offences (Amendment) Bill", LaidBy: "Attorney-General", LaidOn: day(540), GazettedOn: day(500), URL: listURL},
		{Title: "Education Regulatory Bodies Bill", LaidBy: "Minister for Education", LaidOn: day(60), URL: listURL},
		{Title: "Road Traffic (Amendment) Bill", LaidBy: "Minister for Roads and Highways", LaidOn: day(700), URL: listURL},
		{Title: "Affirmative Action (Gender Equity) Bill", LaidBy: "Minister for Gender, Children and Social Protection", LaidOn: day(800), GazettedOn: day(760), URL: listURL},
	}
}

// sampleMembers are served when no member could be scraped.
var sampleMembers = []types.ParliamentMember{
	{Name: "Kwame Asante Boateng", Constituency: "Bantama", Party: types.PartyNPP},
	{Name: "Abena Osei Mensah", Constituency: "Ayawaso West Wuogon", Party: types.PartyNPP},
	{Name: "Kofi Adjei Darko", Constituency: "Tema East", Party: types.PartyNDC},
	{Name: "Akosua Frimpong Owusu", Constituency: "Cape Coast North", Party: types.PartyNDC},
	{Name: "Yaw Sarpong Agyeman", Constituency: "Subin", Party: types.PartyNPP},
	{Name: "Esi Quaye Addo", Constituency: "Ledzokuku", Party: types.PartyNDC},
	{Name: "Ibrahim Mahama Abdulai", Constituency: "Tamale Central", Party: types.PartyNDC},
	{Name: "Ama Serwaa Nkansah", Constituency: "Effutu", Party: types.PartyNPP},
	{Name: "Kojo Annan Tetteh", Constituency: "Ketu South", Party: types.PartyNDC},
	{Name: "Adwoa Dankwa Ofori", Constituency: "New Juaben South", Party: types.PartyNPP},
	{Name: "Samuel Atta Kyei", Constituency: "Fomena", Party: types.PartyIndependent},
	{Name: "Fatima Issah Alhassan", Constituency: "Bolgatanga Central", Party: types.PartyNDC},
}

// sampleMemberList returns a fresh copy of sampleMembers.
func sampleMemberList() []types.ParliamentMember {
	return append([]types.ParliamentMember(nil), sampleMembers...)
}
