package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantVia string
		wantOK  bool
	}{
		{
			name:    "pagination list",
			body:    `<ul class="pagination"><li><a href="#">1</a></li><li><a href="#">2</a></li><li><a href="#">5</a></li><li><a href="#">Next</a></li></ul>`,
			want:    5,
			wantVia: "pagination-list",
			wantOK:  true,
		},
		{
			name:    "page param",
			body:    `<a href="/mps?page=2">next</a><a href="/mps?page=9">end</a>`,
			want:    9,
			wantVia: "page-param",
			wantOK:  true,
		},
		{
			name:    "nav container",
			body:    `<nav><a href="/mps/p1">1</a><a href="/mps/p2">2</a><a href="/mps/p4">4</a></nav>`,
			want:    4,
			wantVia: "nav-container",
			wantOK:  true,
		},
		{
			name:    "last link",
			body:    `<a href="/mps/page/12">Last »</a>`,
			want:    12,
			wantVia: "last-link",
			wantOK:  true,
		},
		{
			name:    "page x of y",
			body:    `<p>Showing Page 2 of 14</p>`,
			want:    14,
			wantVia: "page-of",
			wantOK:  true,
		},
		{
			name:    "bare numbers",
			body:    `<div>Members 1 2 3 4 5 Next</div><p>Elected in 2024 with 33 seats</p>`,
			want:    5,
			wantVia: "body-numbers",
			wantOK:  true,
		},
		{
			name:   "nothing",
			body:   `<p>Members of Parliament 2024</p>`,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, via, ok := PageCount(makeDoc(t, tt.body))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantVia, via)
		})
	}
}

func TestBareNumberRun(t *testing.T) {
	assert.Equal(t, 0, bareNumberRun("1 2"))
	assert.Equal(t, 3, bareNumberRun("1 2 3"))
	assert.Equal(t, 0, bareNumberRun("21 22 23"))
	assert.Equal(t, 7, bareNumberRun("Page 1 2 3 next 5 6 7"))
}
