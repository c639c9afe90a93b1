package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdirForTest(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkspaceURL != "https://kbase.us/services/ws" {
		t.Errorf("workspace url = %q", cfg.WorkspaceURL)
	}
	if cfg.Timeout != 30*time.Second || cfg.CacheTTL != 10*time.Minute {
		t.Errorf("timeout = %v, cache ttl = %v", cfg.Timeout, cfg.CacheTTL)
	}
	if cfg.Log.Format != "human" || cfg.Log.Debug {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.TokenEnv != "KB_AUTH_TOKEN" {
		t.Errorf("token env = %q", cfg.TokenEnv)
	}
}

func TestLoad_FileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	writeFile(t, dir, "asmparams.yaml", "service_url: http://localhost:5000\ntimeout: 5s\ncache_ttl: 0s\nlog:\n  format: json\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServiceURL != "http://localhost:5000" || cfg.Timeout != 5*time.Second || cfg.CacheTTL != 0 || cfg.Log.Format != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "workspace_url: http://file/ws\nlog:\n  debug: false\n")
	t.Setenv("ASMPARAMS_WORKSPACE_URL", "http://env/ws")
	t.Setenv("ASMPARAMS_LOG_DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkspaceURL != "http://env/ws" {
		t.Errorf("workspace url = %q", cfg.WorkspaceURL)
	}
	if !cfg.Log.Debug {
		t.Error("log.debug should come from the environment")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "timeout: [\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestToken(t *testing.T) {
	t.Setenv("MY_TOKEN", "secret")
	if got := (Config{TokenEnv: "MY_TOKEN"}).Token(); got != "secret" {
		t.Errorf("Token = %q", got)
	}
	if got := (Config{}).Token(); got != "" {
		t.Errorf("Token with no env = %q", got)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "files.yaml", "lib1:\n  fwd: /data/a_1.fq\n  rev: /data/a_2.fq\n")
	var out map[string]map[string]string
	if err := LoadYAML(path, &out); err != nil {
		t.Fatal(err)
	}
	if out["lib1"]["rev"] != "/data/a_2.fq" {
		t.Errorf("out = %v", out)
	}

	if err := LoadYAML(filepath.Join(dir, "missing.yaml"), &out); err == nil {
		t.Error("expected read error")
	}
	bad := writeFile(t, dir, "bad.yaml", "a: [\n")
	if err := LoadYAML(bad, &out); err == nil {
		t.Error("expected parse error")
	}
}

// chdirForTest changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in newer Go).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
