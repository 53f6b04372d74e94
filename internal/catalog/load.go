package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// Load error codes.
const (
	ErrCodeNotFound    = "CATALOG_DIR_NOT_FOUND"
	ErrCodeNoFiles     = "CATALOG_NO_FILES"
	ErrCodeLoadFailed  = "CATALOG_LOAD_FAILED"
	ErrCodeBuildFailed = "CATALOG_BUILD_FAILED"
)

// LoadResult describes a successful directory load.
type LoadResult struct {
	Catalog   *Catalog
	FileCount int
}

// LoadDir loads every CUE file in dir and compiles the declarations on
// top of base. Error handling follows mode: fail-fast returns the first
// problem, collect-all returns them all.
func LoadDir(dir string, base *Catalog, mode Mode) (*LoadResult, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&Error{Code: ErrCodeNotFound, Name: dir, Message: "catalog directory not found"}}
	}
	if err != nil {
		return nil, []error{&Error{Code: ErrCodeNotFound, Name: dir, Message: err.Error()}}
	}
	if !info.IsDir() {
		return nil, []error{&Error{Code: ErrCodeNotFound, Name: dir, Message: "not a directory"}}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, []error{&Error{Code: ErrCodeLoadFailed, Name: dir, Message: err.Error()}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&Error{Code: ErrCodeNoFiles, Name: dir, Message: "no CUE files found"}}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, []error{&Error{Code: ErrCodeLoadFailed, Name: dir, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&Error{Code: ErrCodeLoadFailed, Name: dir, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&Error{Code: ErrCodeBuildFailed, Name: dir, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	cat, errs := Compile(value, base, mode)
	if len(errs) > 0 {
		return nil, errs
	}
	return &LoadResult{Catalog: cat, FileCount: len(cueFiles)}, nil
}

// findCUEFiles lists CUE files directly in dir, ignoring hidden files.
func findCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if filepath.Ext(e.Name()) == ".cue" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
