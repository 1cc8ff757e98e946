package signing

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
)

var completeFile = map[string]string{
	KeyAlias:      "upload",
	KeyPassword:   "k3y-p@ss",
	StoreFile:     "../upload-keystore.jks",
	StorePassword: "st0re-p@ss",
}

func render(values map[string]string, skip string) []byte {
	var b strings.Builder
	b.WriteString("# generated\n")
	for _, key := range RequiredKeys {
		if key == skip {
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", key, values[key])
	}
	return []byte(b.String())
}

func TestParse_Complete(t *testing.T) {
	creds, err := Parse(render(completeFile, ""), "key.properties")
	require.NoError(t, err)

	assert.Equal(t, Credentials{
		KeyAlias:      "upload",
		KeyPassword:   "k3y-p@ss",
		StoreFile:     "../upload-keystore.jks",
		StorePassword: "st0re-p@ss",
	}, *creds)
}

func TestParse_EachMissingKeyIsNamed(t *testing.T) {
	for _, key := range RequiredKeys {
		t.Run(key, func(t *testing.T) {
			_, err := Parse(render(completeFile, key), "key.properties")
			require.Error(t, err)

			assert.True(t, stderrors.Is(err, ErrMissingCredentialField))
			assert.True(t, errors.HasCategory(err, errors.CategorySigning))
			assert.Contains(t, err.Error(), fmt.Sprintf("Missing '%s' in key.properties", key))

			field, ok := MissingField(err)
			require.True(t, ok)
			assert.Equal(t, key, field)
		})
	}
}

func TestParse_EmptyValueIsMissing(t *testing.T) {
	data := []byte("keyAlias=upload\nkeyPassword=\nstoreFile=ks.jks\nstorePassword=x\n")
	_, err := Parse(data, "key.properties")

	field, ok := MissingField(err)
	require.True(t, ok)
	assert.Equal(t, KeyPassword, field)
}

func TestParse_JavaSyntax(t *testing.T) {
	data := []byte(strings.Join([]string{
		"! bang comment",
		"keyAlias : upload",
		"keyPassword   spaced\\",
		"    continued",
		"storeFile=C:\\\\keys\\\\upload.jks",
		"storePassword=${NOT_EXPANDED}",
	}, "\n"))

	creds, err := Parse(data, "key.properties")
	require.NoError(t, err)

	assert.Equal(t, "upload", creds.KeyAlias)
	assert.Equal(t, "spacedcontinued", creds.KeyPassword)
	assert.Equal(t, `C:\keys\upload.jks`, creds.StoreFile)
	assert.Equal(t, "${NOT_EXPANDED}", creds.StorePassword)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.properties")
	require.NoError(t, os.WriteFile(path, render(completeFile, ""), 0o600))

	creds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "upload", creds.KeyAlias)

	_, err = Load(filepath.Join(dir, "absent.properties"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCredentialsNeverPrintPasswords(t *testing.T) {
	creds := Credentials{KeyAlias: "a", KeyPassword: "secret1", StoreFile: "s", StorePassword: "secret2"}

	assert.NotContains(t, creds.String(), "secret")
	assert.NotContains(t, creds.LogValue().String(), "secret")

	r := creds.Redacted()
	assert.Equal(t, redacted, r.KeyPassword)
	assert.Equal(t, redacted, r.StorePassword)
	assert.Equal(t, "secret1", creds.KeyPassword)
}

func TestMissingField_OtherErrors(t *testing.T) {
	_, ok := MissingField(stderrors.New("plain"))
	assert.False(t, ok)
	_, ok = MissingField(nil)
	assert.False(t, ok)
}
