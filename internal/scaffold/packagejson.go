package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/uskit/cli/internal/output"
)

// addDependency records pkgName as a file: dependency in the package.json
// at path. A missing package.json is skipped: legacy workspaces and tests
// do not always carry one.
func addDependency(path, pkgName, target string) error {
	pkg, err := readPackageJSON(path)
	if err != nil {
		return err
	}
	if pkg == nil {
		output.Debug("no package.json to patch", "path", path)
		return nil
	}

	deps, _ := pkg["dependencies"].(map[string]interface{})
	if deps == nil {
		deps = make(map[string]interface{})
		pkg["dependencies"] = deps
	}

	if _, ok := deps[pkgName]; ok {
		return nil
	}
	deps[pkgName] = "file:" + target

	return writePackageJSON(path, pkg)
}

// removeDependency drops pkgName from the dependencies of the package.json
// at path. Missing file or missing entry is a no-op.
func removeDependency(path, pkgName string) error {
	pkg, err := readPackageJSON(path)
	if err != nil {
		return err
	}
	if pkg == nil {
		return nil
	}

	deps, _ := pkg["dependencies"].(map[string]interface{})
	if deps == nil {
		return nil
	}
	if _, ok := deps[pkgName]; !ok {
		return nil
	}

	delete(deps, pkgName)
	return writePackageJSON(path, pkg)
}

func readPackageJSON(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg map[string]interface{}
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pkg, nil
}

func writePackageJSON(path string, pkg map[string]interface{}) error {
	content, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(content, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
