package storage

import "testing"

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "meeting.mp3", "meeting.mp3"},
		{"spaces", "My cool movie.mov", "My_cool_movie.mov"},
		{"traversal", "../../../etc/passwd", "etc_passwd"},
		{"windows separators", `C:\Users\bob\notes.wav`, "C_Users_bob_notes.wav"},
		{"umlauts", "i contain cool \u00fcml\u00e4uts.txt", "i_contain_cool_umlauts.txt"},
		{"leading dots", "..hidden.ogg", "hidden.ogg"},
		{"symbols", "q1 (final)!.m4a", "q1_final.m4a"},
		{"only symbols", "???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecureFilename(tt.in); got != tt.want {
				t.Fatalf("SecureFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
