package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req, err := NewRequest("https://www.parliament.gh/bills?page=2")
	require.NoError(t, err)
	assert.Equal(t, "https://www.parliament.gh/bills?page=2", req.URLString())

	_, err = NewRequest("mailto:clerk@parliament.gh")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestStatusCode(t *testing.T) {
	err := fmt.Errorf("scrape news: %w", &FetchError{URL: "https://x", StatusCode: 503, Err: errors.New("HTTP 503")})
	assert.Equal(t, 503, StatusCode(err))
	assert.Contains(t, err.Error(), "status 503")
	assert.Equal(t, 0, StatusCode(errors.New("boom")))
}

func TestDocumentEmptyBody(t *testing.T) {
	resp := &Response{}
	_, err := resp.Document()
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewItemFlattens(t *testing.T) {
	bill := Bill{Title: "Fees and Charges Bill", Status: StatusPassed, Tags: []string{"Fees"}}
	item, err := NewItem("bill", "https://www.parliament.gh/bills", "live", bill)
	require.NoError(t, err)

	assert.Equal(t, "Fees and Charges Bill", item.GetString("title"))
	assert.Equal(t, "passed", item.GetString("status"))

	flat := item.ToFlatMap()
	assert.Equal(t, "bill", flat["_kind"])
	assert.Equal(t, "live", flat["_source"])
	assert.Equal(t, `["Fees"]`, flat["tags"])

	doc := item.Document()
	assert.Equal(t, "https://www.parliament.gh/bills", doc["_url"])
}
