package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectToggleArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"daylist"},
			want: []string{"daylist"},
		},
		{
			name: "direct task id first token",
			in:   []string{"daylist", "1724112000000"},
			want: []string{"daylist", "tasks", "toggle", "1724112000000"},
		},
		{
			name: "direct task id after value flag",
			in:   []string{"daylist", "--dir", "./tmp-test-home", "1724112000000"},
			want: []string{"daylist", "--dir", "./tmp-test-home", "tasks", "toggle", "1724112000000"},
		},
		{
			name: "direct task id after equals flag",
			in:   []string{"daylist", "--dir=./tmp-test-home", "1724112000000"},
			want: []string{"daylist", "--dir=./tmp-test-home", "tasks", "toggle", "1724112000000"},
		},
		{
			name: "direct task id after bool flag",
			in:   []string{"daylist", "--pretty", "1724112000000"},
			want: []string{"daylist", "--pretty", "tasks", "toggle", "1724112000000"},
		},
		{
			name: "direct task id after double dash",
			in:   []string{"daylist", "--dir", "./tmp-test-home", "--", "1724112000000"},
			want: []string{"daylist", "--dir", "./tmp-test-home", "--", "tasks", "toggle", "1724112000000"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"daylist", "tasks", "toggle", "1724112000000"},
			want: []string{"daylist", "tasks", "toggle", "1724112000000"},
		},
		{
			name: "non-numeric token not rewritten",
			in:   []string{"daylist", "wat"},
			want: []string{"daylist", "wat"},
		},
		{
			name: "negative number not rewritten",
			in:   []string{"daylist", "-5"},
			want: []string{"daylist", "-5"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectToggleArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectToggleArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
