package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for output
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")) // Blue
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// templateDir is the Lua directory shipped with the scaffold.
const templateDir = "lua/myplugin"

// templateRepo is the repository reference baked into lazy.lua.
const templateRepo = "/nvim-plugin-template"

// replacement is one literal find/replace pass over a file's full text.
type replacement struct {
	old string
	new string
}

// Template represents a plugin scaffold rooted at a working directory,
// together with the identity it should be renamed to.
type Template struct {
	Root       string
	PluginName string
	Username   string
	GitURL     string

	snake  string
	pascal string
}

// NewTemplate creates a Template for the scaffold at root. GitURL may be
// empty, in which case the remote update and lazy.lua patch are skipped.
func NewTemplate(root, pluginName, username, gitURL string) *Template {
	return &Template{
		Root:       root,
		PluginName: pluginName,
		Username:   username,
		GitURL:     gitURL,
		snake:      SnakeCase(pluginName),
		pascal:     PascalCase(pluginName),
	}
}

// Rename runs the full rename sequence: directory rename, content
// substitution, optional remote update, optional lazy.lua spec patch.
// Missing files and directories are skipped; external git failures are
// reported as warnings. It never returns an error for those conditions.
func (t *Template) Rename() error {
	fmt.Println(infoStyle.Render("Renaming:"), fmt.Sprintf("%s (%s, %s) for %s", t.PluginName, t.snake, t.pascal, t.Username))
	fmt.Println()

	t.renameDirectory()
	t.updateFiles()

	if t.GitURL != "" {
		t.setRemote()
		t.patchLazySpec()
	}

	fmt.Println()
	fmt.Println(cyanStyle.Render(fmt.Sprintf("🎉 Done! Test with: require('%s').setup()", t.snake)))
	return nil
}

// replacements returns the substitution table in application order.
func (t *Template) replacements() []replacement {
	return []replacement{
		{"myplugin", t.snake},
		{"MyPlugin", t.pascal},
		{"your-username", t.Username},
		{"your-plugin-name", t.PluginName},
		{"YourPluginName", t.pascal},
	}
}

// targetFiles returns the fixed list of files to rewrite, relative to Root.
func (t *Template) targetFiles() []string {
	luaDir := filepath.Join("lua", t.snake)
	return []string{
		filepath.Join(luaDir, "init.lua"),
		filepath.Join(luaDir, "config.lua"),
		filepath.Join(luaDir, "commands.lua"),
		"lazy.lua",
		"README.md",
	}
}

// renameDirectory moves lua/myplugin to lua/<snake>. A missing source
// directory means there is nothing to do.
func (t *Template) renameDirectory() {
	oldDir := filepath.Join(t.Root, filepath.FromSlash(templateDir))
	newDir := filepath.Join(t.Root, "lua", t.snake)

	if _, err := os.Stat(oldDir); err != nil {
		if !os.IsNotExist(err) {
			fmt.Println(warnStyle.Render("! Could not stat "+filepath.FromSlash(templateDir)+":"), err)
		}
		return
	}

	if err := os.Rename(oldDir, newDir); err != nil {
		fmt.Println(warnStyle.Render("! Could not rename directory:"), err)
		return
	}
	fmt.Println(successStyle.Render("✓"), "Renamed", filepath.FromSlash(templateDir), "→", filepath.Join("lua", t.snake))
}

// updateFiles applies every replacement to each target file that exists,
// overwriting the file in place.
func (t *Template) updateFiles() {
	for _, rel := range t.targetFiles() {
		path := filepath.Join(t.Root, rel)

		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			fmt.Println(warnStyle.Render("! Could not read "+rel+":"), err)
			continue
		}

		text := string(content)
		for _, r := range t.replacements() {
			text = strings.ReplaceAll(text, r.old, r.new)
		}

		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			fmt.Println(warnStyle.Render("! Could not write "+rel+":"), err)
			continue
		}
		fmt.Println(successStyle.Render("✓"), "Updated", rel)
	}
}

// patchLazySpec rewrites the template repository reference in lazy.lua to
// point at the user's repository, derived from the git URL basename. Only
// URLs ending in ".nvim" carry a derivable repository name.
func (t *Template) patchLazySpec() {
	repo, ok := RepoFromURL(t.GitURL)
	if !ok {
		return
	}

	path := filepath.Join(t.Root, "lazy.lua")
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	patched := strings.ReplaceAll(string(content), templateRepo, "/"+repo)
	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		fmt.Println(warnStyle.Render("! Could not write lazy.lua:"), err)
		return
	}
	fmt.Println(successStyle.Render("✓"), "Updated lazy.lua repo reference")
}

// RepoFromURL derives the repository name from a git URL's final path
// segment, stripping the ".nvim" suffix. The second return is false when
// the URL does not end in ".nvim".
func RepoFromURL(gitURL string) (string, bool) {
	base := gitURL
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}

	const suffix = ".nvim"
	if !strings.HasSuffix(base, suffix) {
		return "", false
	}
	return strings.TrimSuffix(base, suffix), true
}
