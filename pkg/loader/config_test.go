package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jamezpolley/publicwhip/pkg/divisions"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "publicwhip.yaml")
	content := `data_dir: /srv/scrapedxml
members_file: /srv/members.xml
houses:
  - senate
database_url: postgres://localhost/publicwhip
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if config.DataDir != "/srv/scrapedxml" {
		t.Errorf("unexpected data dir %q", config.DataDir)
	}
	if config.MembersFile != "/srv/members.xml" {
		t.Errorf("unexpected members file %q", config.MembersFile)
	}
	if config.DatabaseURL != "postgres://localhost/publicwhip" {
		t.Errorf("unexpected database url %q", config.DatabaseURL)
	}

	houses, err := config.HouseList()
	if err != nil {
		t.Fatalf("house list failed: %v", err)
	}
	if len(houses) != 1 || houses[0] != divisions.HouseSenate {
		t.Errorf("unexpected houses %v", houses)
	}
}

func TestLoadConfigDefaultsHouses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "publicwhip.yaml")
	if err := os.WriteFile(path, []byte("data_dir: /srv/xml\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	houses, err := config.HouseList()
	if err != nil {
		t.Fatalf("house list failed: %v", err)
	}
	if len(houses) != 2 {
		t.Errorf("expected both houses by default, got %v", houses)
	}
}

func TestLoadConfigRejectsUnknownHouse(t *testing.T) {
	config := &Config{Houses: []string{"assembly"}}
	if _, err := config.HouseList(); err == nil {
		t.Error("expected an error for a house outside the closed set")
	}
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.example/pw")
	t.Setenv("PW_DATA_DIR", "/env/data")
	t.Setenv("PW_MEMBERS_FILE", "")

	config := DefaultConfig()
	config.MembersFile = "/file/members.xml"
	config.ApplyEnvironment()

	if config.DatabaseURL != "postgres://db.example/pw" {
		t.Errorf("expected the environment database url, got %q", config.DatabaseURL)
	}
	if config.DataDir != "/env/data" {
		t.Errorf("expected the environment data dir, got %q", config.DataDir)
	}
	if config.MembersFile != "/file/members.xml" {
		t.Errorf("an empty environment value must not clobber the config, got %q", config.MembersFile)
	}
}
