package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "add triple",
			in:   []string{"--add", "John", "Doe", "+441234567891"},
			want: []string{"--add=John", "--add=Doe", "--add=+441234567891"},
		},
		{
			name: "add stops at next flag",
			in:   []string{"--add", "John", "Doe", "--list"},
			want: []string{"--add=John", "--add=Doe", "--list"},
		},
		{
			name: "delete with db override",
			in:   []string{"--db", "book.db", "--dl", "A", "B", "C"},
			want: []string{"--db", "book.db", "--dl=A", "--dl=B", "--dl=C"},
		},
		{
			name: "vcard bare",
			in:   []string{"--vcard", "--list"},
			want: []string{"--vcard", "--list"},
		},
		{
			name: "vcard with path",
			in:   []string{"--vcard", "out.vcf"},
			want: []string{"--vcard=out.vcf"},
		},
		{
			name: "vcard takes at most one value",
			in:   []string{"--vcard", "out.vcf", "extra"},
			want: []string{"--vcard=out.vcf", "extra"},
		},
		{
			name: "add without values is dropped",
			in:   []string{"--add", "--list"},
			want: []string{"--list"},
		},
		{
			name: "repeated add keeps the last group",
			in:   []string{"--add", "a", "b", "c", "--add", "d", "e", "f"},
			want: []string{"--add=d", "--add=e", "--add=f"},
		},
		{
			name: "repeated dl keeps the last group around other flags",
			in:   []string{"--dl", "a", "b", "--list", "--dl", "d", "e", "f"},
			want: []string{"--list", "--dl=d", "--dl=e", "--dl=f"},
		},
		{
			name: "empty repeat clears earlier values",
			in:   []string{"--add", "a", "b", "c", "--add"},
			want: []string{},
		},
		{
			name: "repeat of one flag leaves the other alone",
			in:   []string{"--add", "a", "b", "c", "--dl", "x", "--add", "d", "e", "f"},
			want: []string{"--dl=x", "--add=d", "--add=e", "--add=f"},
		},
		{
			name: "negative number is a value",
			in:   []string{"--add", "A", "B", "-5"},
			want: []string{"--add=A", "--add=B", "--add=-5"},
		},
		{
			name: "equals form passes through",
			in:   []string{"--add=A", "--vcard=x.vcf"},
			want: []string{"--add=A", "--vcard=x.vcf"},
		},
		{
			name: "double dash ends rewriting",
			in:   []string{"--list", "--", "--add", "x"},
			want: []string{"--list", "--", "--add", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("normalizeArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
