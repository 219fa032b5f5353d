package lib

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	vlib "github.com/mcuadros/go-version"
)

/*
	Thin wrapper over the kicad-cli executable, used for exporting and
	design-rule checks on the generated libraries. The binary is taken
	from an explicit override, then PATH, then (on Windows) the newest
	versioned install under Program Files.
*/
type KiCadInterface struct {
	binPath string
}

func NewKicadInterface(override string) (*KiCadInterface, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return nil, errors.New("configured kicad-cli path does not exist")
		}

		return &KiCadInterface{override}, nil
	}

	if path, err := exec.LookPath("kicad-cli"); err == nil {
		return &KiCadInterface{path}, nil
	}

	if runtime.GOOS != "windows" {
		return nil, errors.New("kicad-cli not found on PATH")
	}

	rootDir := filepath.Join(os.Getenv("ProgramFiles"), "KiCad")
	versions, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, err
	}

	if len(versions) == 0 {
		return nil, errors.New("no KiCad versions found in program folder")
	}

	latestVersion := "0.0.1"
	for _, e := range versions {
		version := e.Name()
		if vlib.CompareSimple(latestVersion, version) == -1 {
			latestVersion = version
		}
	}

	binPath := filepath.Join(rootDir, latestVersion, "bin", "kicad-cli.exe")
	if _, err := os.Stat(binPath); err != nil {
		return nil, errors.New("KiCad binPath does not exist or does not have kicad-cli")
	}

	return &KiCadInterface{binPath}, nil
}

func (ki *KiCadInterface) GetBinPath() string {
	return ki.binPath
}

func (ki *KiCadInterface) ExecuteCommand(args []string, cwd string) error {
	cmd := exec.Command(ki.binPath, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Dir = cwd

	return cmd.Run()
}

/*
	UpgradeSymbolLibrary rewrites an accumulated library with KiCad's
	own tooling, which also validates it.
*/
func (ki *KiCadInterface) UpgradeSymbolLibrary(path string) error {
	return ki.ExecuteCommand([]string{"sym", "upgrade", path}, filepath.Dir(path))
}
