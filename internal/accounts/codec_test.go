// codec_test.go
//
// Local multi-tenant record store for seed distribution, logistics and farmer payments
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of seedledger.
// seedledger is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// seedledger is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with seedledger.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package accounts

import "testing"

func TestDemoCodecMatchesBrowserEncoding(t *testing.T) {
	c := DemoCodec{}
	encoded, _ := c.Encode("secret")
	if encoded != "c2VjcmV0" {
		t.Errorf("Expected base64 c2VjcmV0, got %s", encoded)
	}
	if !c.Matches(encoded, "secret") || c.Matches(encoded, "Secret") {
		t.Error("DemoCodec match is wrong")
	}
}

func TestDemoCodecLatin1AndFallback(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"é", "6Q=="},
		{"café", "Y2Fm6Q=="},
		{"ÿ", "/w=="},
		// btoa rejects characters above U+00FF, so the browser kept the raw text
		{"密码", "密码"},
		{"é密", "é密"},
	}
	c := DemoCodec{}
	for _, tt := range tests {
		got, err := c.Encode(tt.password)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", tt.password, err)
		}
		if got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.password, got, tt.want)
		}
		if !c.Matches(tt.want, tt.password) {
			t.Errorf("Matches(%q, %q) = false", tt.want, tt.password)
		}
	}
}

func TestBcryptCodec(t *testing.T) {
	c, err := NewCodec("bcrypt", 4)
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	stored, err := c.Encode("secret")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if stored == "secret" {
		t.Fatal("bcrypt stored the raw password")
	}
	if !c.Matches(stored, "secret") {
		t.Error("Expected password to match")
	}
	if c.Matches(stored, "wrong") {
		t.Error("Expected wrong password to fail")
	}
}

func TestNewCodec(t *testing.T) {
	tests := []struct {
		scheme  string
		cost    int
		name    string
		wantErr bool
	}{
		{"", 0, "demo", false},
		{"demo", 0, "demo", false},
		{"bcrypt", 0, "bcrypt", false},
		{"bcrypt", 99, "", true},
		{"rot13", 0, "", true},
	}
	for _, tt := range tests {
		c, err := NewCodec(tt.scheme, tt.cost)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewCodec(%q, %d): expected error", tt.scheme, tt.cost)
			}
			continue
		}
		if err != nil || c.Name() != tt.name {
			t.Errorf("NewCodec(%q): got %v, %v", tt.scheme, c, err)
		}
	}
}
