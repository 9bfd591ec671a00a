package internalcheck

import (
	"go/types"
	"testing"

	"golang.org/x/tools/go/packages"

	"github.com/presswerk/presswerk-go/pkg/presswerk"
	"github.com/presswerk/presswerk-go/pkg/presswerk/bridge"
)

// declaredConstants returns the names of exported constants of the named type
// declared in pkg.
func declaredConstants(t *testing.T, pkgPath, typeName string) map[string]bool {
	t.Helper()

	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedTypesInfo | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	names := map[string]bool{}
	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			c, ok := obj.(*types.Const)
			if !ok || !c.Exported() {
				continue
			}
			named, ok := c.Type().(*types.Named)
			if !ok || named.Obj().Name() != typeName {
				continue
			}
			names[name] = true
		}
	}
	return names
}

func TestResultRegistryComplete(t *testing.T) {
	declared := declaredConstants(t, "github.com/presswerk/presswerk-go/pkg/presswerk", "Result")

	if len(declared) != len(presswerk.AllResults()) {
		t.Errorf("declared %d Result constants, registry lists %d: declared=%v",
			len(declared), len(presswerk.AllResults()), declared)
	}
	seen := map[presswerk.Result]bool{}
	for _, r := range presswerk.AllResults() {
		if seen[r] {
			t.Errorf("result %v listed twice in AllResults", r)
		}
		seen[r] = true
	}
}

func TestJobStatusRegistryComplete(t *testing.T) {
	declared := declaredConstants(t, "github.com/presswerk/presswerk-go/pkg/presswerk", "JobStatus")

	// StatusUnknown is the decode sentinel, deliberately outside the closed
	// status set.
	delete(declared, "StatusUnknown")

	if len(declared) != len(presswerk.AllJobStatuses()) {
		t.Errorf("declared %d JobStatus constants, registry lists %d: declared=%v",
			len(declared), len(presswerk.AllJobStatuses()), declared)
	}
}

func TestBridgeOpRegistryComplete(t *testing.T) {
	declared := declaredConstants(t, "github.com/presswerk/presswerk-go/pkg/presswerk/bridge", "Op")

	if len(declared) != len(bridge.AllOps()) {
		t.Errorf("declared %d Op constants, registry lists %d: declared=%v",
			len(declared), len(bridge.AllOps()), declared)
	}
	seen := map[bridge.Op]bool{}
	for _, op := range bridge.AllOps() {
		if seen[op] {
			t.Errorf("op %v listed twice in AllOps", op)
		}
		seen[op] = true
	}
}
