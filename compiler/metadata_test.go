package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want map[string]string
	}{
		{
			name: "basic pairs",
			src:  "<!-- name my-widget -->\n<!-- author Some One -->\n\n<template></template>",
			want: map[string]string{"name": "my-widget", "author": "Some One"},
		},
		{
			name: "stops at first blank line",
			src:  "<!-- name my-widget -->\n\n<!-- author hidden -->\n",
			want: map[string]string{"name": "my-widget"},
		},
		{
			name: "later line overwrites earlier",
			src:  "<!-- name first -->\n<!-- name second -->\n\n",
			want: map[string]string{"name": "second"},
		},
		{
			name: "non-matching lines skipped",
			src:  "<!--name tight-->\nplain text\n<!-- name ok --> trailing\n<!-- name good -->\n\n",
			want: map[string]string{"name": "good"},
		},
		{
			name: "value keeps internal spacing",
			src:  "<!-- title A  Big   Title -->\n\n",
			want: map[string]string{"title": "A  Big   Title"},
		},
		{
			name: "empty value",
			src:  "<!-- name  -->\n\n",
			want: map[string]string{"name": ""},
		},
		{
			name: "no blank line takes whole document",
			src:  "<!-- name whole -->\n<template></template>",
			want: map[string]string{"name": "whole"},
		},
		{
			name: "no properties",
			src:  "<template></template>\n\n",
			want: map[string]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseProperties(tc.src)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("parseProperties mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
