package plan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadPlan(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "plan.yaml")
	data := "" +
		"rules:\n" +
		"  - target: /srv/inbox\n" +
		"    keyword: invoice\n" +
		"  - target: /srv/inbox\n" +
		"    keyword: receipt\n" +
		"    dry_run: true\n" +
		"    table: true\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Read(p)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(f.Rules) != 2 {
		t.Fatalf("rules=%v", f.Rules)
	}
	if f.Rules[0].Target != "/srv/inbox" || f.Rules[0].Keyword != "invoice" {
		t.Fatalf("rule 0=%+v", f.Rules[0])
	}
	if !f.Rules[1].DryRun || !f.Rules[1].Table {
		t.Fatalf("rule 1 flags not parsed: %+v", f.Rules[1])
	}
}

func TestReadPlanMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadPlanBadYaml(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "plan.yaml")
	if err := os.WriteFile(p, []byte("rules: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(p); err == nil {
		t.Fatalf("expected parse error")
	}
}
