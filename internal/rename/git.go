package rename

import (
	"fmt"
	"os"
	"os/exec"
)

// setRemote points the origin remote at the configured git URL. A failed
// or missing git invocation is reported as a warning, never an error.
func (t *Template) setRemote() {
	if err := t.git("remote", "set-url", "origin", t.GitURL); err != nil {
		fmt.Println(warnStyle.Render("! Could not set git remote:"), err)
		return
	}
	fmt.Println(successStyle.Render("✓"), "Set git remote:", t.GitURL)
}

func (t *Template) git(args ...string) error {
	cmd := exec.Command("git", append([]string{"-C", t.Root}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
