package query

import (
	"sort"
	"testing"
)

func TestFileRepositoryWriteReadAllRoundtrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)

	lib := Library{
		{Name: "dogs-running", Pattern: Pattern{Subject: "cachorro", Relation: "correr"}},
		{Name: "cats-eating", Pattern: Pattern{Subject: "gato", Relation: "comer", Complement: "ração"}},
	}

	if err := repo.Write(lib); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := repo.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	sort.Slice(got, func(i, j int) bool { return got[i].Name < got[j].Name })

	if len(got) != 2 {
		t.Fatalf("ReadAll() returned %d entries, want 2", len(got))
	}
	if got[0].Name != "cats-eating" || got[0].Pattern.Complement != "ração" {
		t.Errorf("got[0] = %+v, want cats-eating with complement ração", got[0])
	}
	if got[1].Name != "dogs-running" || got[1].Pattern.Subject != "cachorro" {
		t.Errorf("got[1] = %+v, want dogs-running with subject cachorro", got[1])
	}
}

func TestFileRepositoryReadAllMissingDir(t *testing.T) {
	repo := NewFileRepository("/no/such/directory/ever")
	lib, err := repo.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on a missing directory should not error, got: %v", err)
	}
	if lib != nil {
		t.Errorf("expected an empty Library, got %v", lib)
	}
}

func TestLibraryFindAndNames(t *testing.T) {
	lib := Library{
		{Name: "a", Pattern: Pattern{Subject: "x"}},
		{Name: "b", Pattern: Pattern{Subject: "y"}},
	}

	if names := lib.Names(); len(names) != 2 {
		t.Fatalf("Names() = %v, want 2 entries", names)
	}

	q, ok := lib.Find("b")
	if !ok || q.Pattern.Subject != "y" {
		t.Errorf("Find(b) = %+v, %v; want Subject=y, true", q, ok)
	}

	if _, ok := lib.Find("missing"); ok {
		t.Error("Find should report false for an unknown name")
	}
}
