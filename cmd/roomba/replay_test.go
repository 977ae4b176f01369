package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/roomba-cleanup/internal/config"
	"github.com/vovakirdan/roomba-cleanup/internal/roomba"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    []string
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"keys and ticks", "d, d,tick ,w", []string{"d", "d", "tick", "w"}, false},
		{"uppercase letter", "d,W", nil, true},
		{"arrows", "Up,left,TICK", []string{"Up", "left", "TICK"}, false},
		{"blank entries", "w,,s,", []string{"w", "s"}, false},
		{"restart", "r,R", []string{"r", "R"}, false},
		{"typo", "w,jump", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScript(tt.script)
			if tt.wantErr {
				if !errors.Is(err, errUnknownToken) {
					t.Errorf("expected errUnknownToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	cfg := config.Default()
	script := []string{"d", "d", "tick", "w", "tick", "left", "tick"}

	a, err := replay(cfg, 7, script)
	if err != nil {
		t.Fatalf("replay() failed: %v", err)
	}
	b, err := replay(cfg, 7, script)
	if err != nil {
		t.Fatalf("replay() failed: %v", err)
	}

	if boardText(a.Snapshot()) != boardText(b.Snapshot()) {
		t.Error("same seed and script gave different boards")
	}
	if a.Snapshot().Status != b.Snapshot().Status {
		t.Error("same seed and script gave different status")
	}
}

func TestReplayWinOnTinyBoard(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width = 2
	cfg.Grid.Height = 1
	cfg.Trash.Starting = 1

	session, err := replay(cfg, 1, []string{"left"})
	if err != nil {
		t.Fatalf("replay() failed: %v", err)
	}

	snap := session.Snapshot()
	if snap.Status != roomba.WinMessage {
		t.Errorf("status = %q, expected win", snap.Status)
	}

	text := boardText(snap)
	if !strings.Contains(text, "ALL CLEAN!") {
		t.Errorf("board text missing overlay:\n%s", text)
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line has trailing spaces: %q", line)
		}
	}
}

func TestWritePNG(t *testing.T) {
	cfg := config.Default()
	session, err := replay(cfg, 3, nil)
	if err != nil {
		t.Fatalf("replay() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "board.png")
	if err := writePNG(path, cfg, session.Snapshot()); err != nil {
		t.Fatalf("writePNG() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("cannot open PNG: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("cannot decode PNG: %v", err)
	}
	size := cfg.Grid.Width * cfg.Grid.CellSize
	if b := img.Bounds(); b.Dx() != size || b.Dy() != cfg.Grid.Height*cfg.Grid.CellSize {
		t.Errorf("image is %dx%d, expected %dx%d", b.Dx(), b.Dy(), size, size)
	}
}
