package validator

import "testing"

func TestAllowedFile(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"meeting.mp3", true},
		{"MEETING.MP3", true},
		{"a.b.wav", true},
		{"call.M4a", true},
		{"take.flac", true},
		{"voice.ogg", true},
		{"notes.txt", false},
		{"mp3", false},
		{"", false},
		{"archive.mp3.zip", false},
		{"trailing.", false},
		{".ogg", true},
	}

	for _, tc := range cases {
		if got := AllowedFile(tc.name, DefaultAudioExtensions); got != tc.want {
			t.Errorf("AllowedFile(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCustomValidator_AudioExtTag(t *testing.T) {
	type form struct {
		Filename string `validate:"required,audioext"`
	}

	v := New(nil)
	if err := v.Validate(&form{Filename: "standup.wav"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := v.Validate(&form{Filename: "standup.exe"}); err == nil {
		t.Fatal("expected audioext failure")
	}
	if err := v.Validate(&form{}); err == nil {
		t.Fatal("expected required failure")
	}

	custom := New([]string{"opus"})
	if err := custom.Validate(&form{Filename: "standup.opus"}); err != nil {
		t.Fatalf("expected custom extension to pass, got %v", err)
	}
	if err := custom.Validate(&form{Filename: "standup.mp3"}); err == nil {
		t.Fatal("expected mp3 to be rejected by custom list")
	}
}

func TestNewWithTag_RegistrationError(t *testing.T) {
	if _, err := newWithTag("", nil); err == nil {
		t.Fatal("expected error for empty tag")
	}
	if _, err := newWithTag(AudioExtTag, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_RegistersAudioExt(t *testing.T) {
	defer func() {
		if recover() != nil {
			t.Fatal("New must not panic for the audioext tag")
		}
	}()
	_ = New(DefaultAudioExtensions)
}
