package seed

import (
	"path/filepath"
	"testing"

	"github.com/fieldcraft/cinequote/internal/db"
	"github.com/fieldcraft/cinequote/internal/migrations"
)

func TestRun_Idempotent(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "seed_test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	first, err := Run(database)
	if err != nil {
		t.Fatalf("first seed run: %v", err)
	}
	if first.Inserts == 0 {
		t.Fatal("expected the first run to insert defaults")
	}

	second, err := Run(database)
	if err != nil {
		t.Fatalf("second seed run: %v", err)
	}
	if second.Inserts != 0 {
		t.Fatalf("second run inserted %d rows, want 0", second.Inserts)
	}
}

func TestDefaultCatalog_ScopesOrderedByResponsibility(t *testing.T) {
	catalog := DefaultCatalog()
	for i := 1; i < len(catalog.ExecutionScopes); i++ {
		prev, cur := catalog.ExecutionScopes[i-1], catalog.ExecutionScopes[i]
		if cur.PerDayAdd < prev.PerDayAdd {
			t.Fatalf("scope %q adds less per day than %q; catalog order must track responsibility", cur.ID, prev.ID)
		}
	}
}
