package notify

import "fmt"

// EditorOpenCommand builds the shell command a notification click runs
// to open the editor at path. Unrecognized editors get the identity
// form `{editor} "{path}"`. Returns "" when either argument is empty.
func EditorOpenCommand(editor, path string) string {
	if editor == "" || path == "" {
		return ""
	}

	switch editor {
	case "zed":
		return fmt.Sprintf(`zed %q`, path)
	case "code":
		return fmt.Sprintf(`/usr/local/bin/code %q`, path)
	case "cursor":
		return fmt.Sprintf(`cursor %q`, path)
	case "subl":
		return fmt.Sprintf(`subl %q`, path)
	case "atom":
		return fmt.Sprintf(`atom %q`, path)
	default:
		return fmt.Sprintf(`%s %q`, editor, path)
	}
}
