package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"InvocationID", KeyInvocationID, "abc", InvocationID("abc")},
		{"CredentialsFile", KeyCredentialsFile, "key.properties", CredentialsFile("key.properties")},
		{"Field", KeyField, "keyAlias", Field("keyAlias")},
		{"Outcome", KeyOutcome, "skipped", Outcome("skipped")},
		{"BuildType", KeyBuildType, "release", BuildType("release")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Fatalf("%s: key mismatch got %s want %s", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Fatalf("%s: value mismatch got %s want %s", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestTaskListHelpers(t *testing.T) {
	a := Tasks([]string{"assembleDebug", "bundleRelease"})
	if a.Key != KeyTasks || a.Value.Kind() != slog.KindAny {
		t.Fatalf("unexpected tasks attr: %v", a)
	}
	r := ReleaseTasks([]string{"bundleRelease"})
	if r.Key != KeyReleaseTasks {
		t.Fatalf("unexpected release tasks key: %s", r.Key)
	}
	if d := DurationMS(1.5); d.Value.Float64() != 1.5 {
		t.Fatalf("unexpected duration: %v", d.Value)
	}
}
