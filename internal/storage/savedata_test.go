package storage

import (
	"fmt"
	"testing"
	"time"
)

// openTestSaveData points the user data directories at a temp dir.
func openTestSaveData(t *testing.T) *SaveData {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	sd, err := OpenSaveData(fmt.Sprintf("snake_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("Cannot open save data for testing: %v", err)
	}
	return sd
}

func TestOpenSaveDataRequiresAppName(t *testing.T) {
	if _, err := OpenSaveData(""); err == nil {
		t.Error("expected error for empty app name")
	}
}

func TestSaveDataAbsent(t *testing.T) {
	sd := openTestSaveData(t)

	if score, ok := sd.LoadHighScore(); ok || score != 0 {
		t.Errorf("LoadHighScore() = (%d, %v), want (0, false)", score, ok)
	}
}

func TestSaveDataNeverLowers(t *testing.T) {
	sd := openTestSaveData(t)

	for _, s := range []int{20, 80, 40} {
		if err := sd.StoreHighScore(s); err != nil {
			t.Fatalf("StoreHighScore(%d) failed: %v", s, err)
		}
	}

	if score, ok := sd.LoadHighScore(); !ok || score != 80 {
		t.Errorf("LoadHighScore() = (%d, %v), want (80, true)", score, ok)
	}
}

func TestSaveDataDecimalText(t *testing.T) {
	sd := openTestSaveData(t)

	if err := sd.StoreHighScore(150); err != nil {
		t.Fatalf("StoreHighScore() failed: %v", err)
	}

	raw, err := sd.manager.LoadObjectProp(saveObject, highScoreKey)
	if err != nil {
		t.Fatalf("LoadObjectProp() failed: %v", err)
	}
	if string(raw) != "150" {
		t.Errorf("stored value = %q, want %q", raw, "150")
	}
}

func TestSaveDataMalformed(t *testing.T) {
	sd := openTestSaveData(t)

	if err := sd.manager.SaveObjectProp(saveObject, highScoreKey, []byte("lots")); err != nil {
		t.Fatalf("SaveObjectProp() failed: %v", err)
	}

	if score, ok := sd.LoadHighScore(); ok || score != 0 {
		t.Errorf("LoadHighScore() = (%d, %v), want (0, false)", score, ok)
	}

	// A malformed value is overwritten by the next record
	if err := sd.StoreHighScore(30); err != nil {
		t.Fatalf("StoreHighScore() failed: %v", err)
	}
	if score, ok := sd.LoadHighScore(); !ok || score != 30 {
		t.Errorf("LoadHighScore() = (%d, %v), want (30, true)", score, ok)
	}
}

func TestSaveDataReset(t *testing.T) {
	sd := openTestSaveData(t)

	sd.StoreHighScore(90)
	if err := sd.ResetHighScore(); err != nil {
		t.Fatalf("ResetHighScore() failed: %v", err)
	}
	if score, _ := sd.LoadHighScore(); score != 0 {
		t.Errorf("score after reset = %d, want 0", score)
	}
}
