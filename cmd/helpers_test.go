// File: cmd/helpers_test.go
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkrahm/boxgrid/api/schemas"
)

// sampleXUL measures, with the default metrics, to one 18 high row and
// two columns 26 and 40 wide.
const sampleXUL = `<grid>
  <columns>
    <column width="10"/>
    <column width="20"/>
  </columns>
  <rows>
    <row>
      <label value="aa"/>
      <label value="bbbb"/>
    </row>
  </rows>
</grid>`

const sampleHTML = `<html><body><table>
<tr><td>a</td><td>b</td></tr>
<tr><td>c</td><td>d</td></tr>
</table></body></html>`

// executeCommand runs a fresh command tree with args and returns the
// combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCommand()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// writeTempDoc drops content into dir under name and returns the path.
func writeTempDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// decodeReports reads back every JSON report document in the file.
func decodeReports(t *testing.T, path string) []schemas.GridReport {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var reports []schemas.GridReport
	dec := json.NewDecoder(f)
	for {
		var rep schemas.GridReport
		err := dec.Decode(&rep)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		reports = append(reports, rep)
	}
	return reports
}
