package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/irocheck/internal/cli"
)

// run executes irocheck with args against an isolated store and config directory.
func run(t *testing.T, store string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("IROCHECK_STORE", store)
	t.Setenv("IROCHECK_CONFIG", "")
	t.Setenv("IROCHECK_FORMAT", "")
	t.Setenv("IROCHECK_NO_COLOR", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func tempStore(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "palettes.json")
}

func TestCheckCommand(t *testing.T) {
	store := tempStore(t)

	t.Run("Text", func(t *testing.T) {
		out, _, err := run(t, store, "check", "--no-preview", "#FFFFFF", "#64748B")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if !strings.Contains(out, "Contrast ratio: 4.75:1") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("DefaultPair", func(t *testing.T) {
		out, _, err := run(t, store, "check", "--no-preview")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if !strings.Contains(out, "background #FFFFFF  text #64748B") {
			t.Errorf("default pair not used:\n%s", out)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := run(t, store, "check", "-f", "json", "ffffff", "000000")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		var decoded struct {
			Background string `json:"bg_color"`
			Result     struct {
				Ratio    float64 `json:"ratio"`
				AANormal bool    `json:"aa_normal"`
			} `json:"result"`
		}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if decoded.Background != "#FFFFFF" || decoded.Result.Ratio != 21 || !decoded.Result.AANormal {
			t.Errorf("decoded = %+v", decoded)
		}
	})

	t.Run("Preview", func(t *testing.T) {
		out, _, err := run(t, store, "check", "#FFFFFF", "#000000")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if !strings.Contains(out, "The quick brown fox") {
			t.Errorf("preview card missing:\n%s", out)
		}
		if strings.Contains(out, "\033[48;2;") {
			t.Errorf("swatches should not be coloured when output is not a terminal:\n%s", out)
		}
	})

	t.Run("InvalidColour", func(t *testing.T) {
		if _, _, err := run(t, store, "check", "#FFF", "#000000"); err == nil {
			t.Error("expected error for shorthand colour")
		}
	})

	t.Run("OneArg", func(t *testing.T) {
		if _, _, err := run(t, store, "check", "#FFFFFF"); err == nil {
			t.Error("expected error for a single colour")
		}
	})

	t.Run("BadFormat", func(t *testing.T) {
		if _, _, err := run(t, store, "check", "-f", "xml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestSwapCommand(t *testing.T) {
	out, _, err := run(t, tempStore(t), "swap", "--no-preview", "#FFFFFF", "#64748B")
	if err != nil {
		t.Fatalf("swap failed: %v", err)
	}
	if !strings.Contains(out, "background #64748B  text #FFFFFF") {
		t.Errorf("colours not swapped:\n%s", out)
	}
}

func TestSuggestCommand(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		out, _, err := run(t, tempStore(t), "suggest", "--no-preview", "#FFFFFF", "#A0A0A0")
		if err != nil {
			t.Fatalf("suggest failed: %v", err)
		}
		for _, want := range []string{"1. Natural adjustment (AA)  4.60:1", "text #757575", "3. Clarity (lightness first)"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("BothJSON", func(t *testing.T) {
		out, _, err := run(t, tempStore(t), "suggest", "-m", "both", "-f", "json", "#1E293B", "#334155")
		if err != nil {
			t.Fatalf("suggest failed: %v", err)
		}
		var decoded struct {
			Mode        string `json:"mode"`
			Suggestions []struct {
				Background string  `json:"bg_color"`
				Text       string  `json:"text_color"`
				Ratio      float64 `json:"ratio"`
			} `json:"suggestions"`
		}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if decoded.Mode != "both" || len(decoded.Suggestions) != 2 {
			t.Fatalf("decoded = %+v", decoded)
		}
		if s := decoded.Suggestions[0]; s.Background != "#000000" || s.Text != "#5D779B" || s.Ratio != 4.57 {
			t.Errorf("first suggestion = %+v", s)
		}
	})

	t.Run("InvalidMode", func(t *testing.T) {
		if _, _, err := run(t, tempStore(t), "suggest", "--mode", "foreground"); err == nil {
			t.Error("expected error for invalid mode")
		}
	})

	t.Run("ApplyOutOfRange", func(t *testing.T) {
		if _, _, err := run(t, tempStore(t), "suggest", "--apply", "4", "#FFFFFF", "#A0A0A0"); err == nil {
			t.Error("expected error for suggestion 4")
		}
	})

	t.Run("ApplyAndSave", func(t *testing.T) {
		store := tempStore(t)
		out, _, err := run(t, store, "suggest", "--no-preview", "-m", "bg", "--apply", "2", "--save", "#FFFFFF", "#A0A0A0")
		if err != nil {
			t.Fatalf("suggest failed: %v", err)
		}
		if !strings.Contains(out, `Applied "High contrast (AAA)"`) || !strings.Contains(out, "background #141414  text #A0A0A0") {
			t.Errorf("applied pair missing:\n%s", out)
		}

		list, _, err := run(t, store, "palette", "list", "-f", "json")
		if err != nil {
			t.Fatalf("palette list failed: %v", err)
		}
		var palettes []struct {
			Background string `json:"bg_color"`
			Text       string `json:"text_color"`
		}
		if err := json.Unmarshal([]byte(list), &palettes); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, list)
		}
		if len(palettes) != 1 || palettes[0].Background != "#141414" || palettes[0].Text != "#A0A0A0" {
			t.Errorf("saved palettes = %+v", palettes)
		}
	})
}

func TestPaletteCommands(t *testing.T) {
	store := tempStore(t)

	out, _, err := run(t, store, "palette", "list")
	if err != nil {
		t.Fatalf("palette list failed: %v", err)
	}
	if out != "" {
		t.Errorf("empty store listed %q", out)
	}

	if _, _, err := run(t, store, "palette", "add", "#FFFFFF", "#64748B"); err != nil {
		t.Fatalf("palette add failed: %v", err)
	}
	added, _, err := run(t, store, "palette", "add", "-f", "json", "#000000", "#FFFFFF")
	if err != nil {
		t.Fatalf("palette add failed: %v", err)
	}
	var p struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(added), &p); err != nil || p.ID == "" {
		t.Fatalf("palette add JSON = %q (%v)", added, err)
	}

	out, _, err = run(t, store, "palette", "list")
	if err != nil {
		t.Fatalf("palette list failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], p.ID[:8]) || !strings.Contains(lines[2], "21.00") {
		t.Errorf("newest palette not first:\n%s", out)
	}

	out, _, err = run(t, store, "palette", "show", "--no-preview", p.ID[:8])
	if err != nil {
		t.Fatalf("palette show failed: %v", err)
	}
	if !strings.Contains(out, "background #000000  text #FFFFFF") {
		t.Errorf("palette show output:\n%s", out)
	}

	if _, _, err := run(t, store, "palette", "delete", p.ID); err != nil {
		t.Fatalf("palette delete failed: %v", err)
	}
	if _, _, err := run(t, store, "palette", "delete", p.ID); err == nil {
		t.Error("expected error deleting a missing palette")
	}
}

func TestGuideCommand(t *testing.T) {
	out, _, err := run(t, tempStore(t), "guide")
	if err != nil {
		t.Fatalf("guide failed: %v", err)
	}
	for i := 1; i <= 4; i++ {
		if !strings.Contains(out, fmt.Sprintf("STEP %d:", i)) {
			t.Errorf("guide missing step %d:\n%s", i, out)
		}
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "irocheck.toml")
	content := "format = \"json\"\ndefault_background = \"#000000\"\ndefault_text = \"#FFFFFF\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := run(t, tempStore(t), "check", "--config", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, `"bg_color": "#000000"`) || !strings.Contains(out, `"ratio": 21`) {
		t.Errorf("config not applied:\n%s", out)
	}
}
