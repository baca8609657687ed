package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	if c.IgnoreFile != ".gitignore" {
		t.Fatalf("IgnoreFile = %q", c.IgnoreFile)
	}
	if len(c.BaseEntries) != 1 || c.BaseEntries[0] != ".DS_Store" {
		t.Fatalf("BaseEntries = %v", c.BaseEntries)
	}
	if !c.AddWithLeadingSlash || !c.TrailingSlashForFolders {
		t.Fatal("slash policies must default to true")
	}
	if c.RemoveEmptyLines || c.RemoveComments || c.SortWhenCleaning {
		t.Fatal("cleaning policies must default to false")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Location != "" {
		t.Fatalf("Location = %q, want empty for defaults", c.Location)
	}
	if !c.AddWithLeadingSlash {
		t.Fatal("defaults not applied")
	}
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	dir := t.TempDir()
	content := "version: 1\nsort_when_cleaning: true\nbase_entries:\n    - .DS_Store\n    - Thumbs.db\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !c.SortWhenCleaning {
		t.Fatal("SortWhenCleaning not decoded")
	}
	if len(c.BaseEntries) != 2 || c.BaseEntries[1] != "Thumbs.db" {
		t.Fatalf("BaseEntries = %v", c.BaseEntries)
	}
	// Keys absent from the yaml keep their defaults.
	if !c.AddWithLeadingSlash || !c.TrailingSlashForFolders {
		t.Fatal("absent keys lost their defaults")
	}
	if c.IgnoreFile != ".gitignore" {
		t.Fatalf("IgnoreFile = %q", c.IgnoreFile)
	}
}

func TestLoadFindsConfigUpward(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("version: 1\nremove_comments: true\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(nested)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.RemoveComments {
		t.Fatal("config above cwd not found")
	}
	if c.Location == "" {
		t.Fatal("Location not recorded")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	c := Default()
	c.RemoveEmptyLines = true
	c.BaseEntries = []string{".DS_Store", "desktop.ini"}
	if err := c.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.RemoveEmptyLines {
		t.Fatal("RemoveEmptyLines lost in round trip")
	}
	if len(loaded.BaseEntries) != 2 || loaded.BaseEntries[1] != "desktop.ini" {
		t.Fatalf("BaseEntries = %v", loaded.BaseEntries)
	}
}
