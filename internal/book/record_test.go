package book

import (
	"errors"
	"testing"

	"github.com/unbound-force/rolo/internal/field"
)

func mustRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	rec, err := NewRecord(name)
	if err != nil {
		t.Fatalf("NewRecord(%q) error: %v", name, err)
	}
	for _, p := range phones {
		if err := rec.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error: %v", p, err)
		}
	}
	return rec
}

func phoneStrings(rec *Record) []string {
	out := make([]string, 0, len(rec.Phones()))
	for _, p := range rec.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestNewRecord_InvalidName(t *testing.T) {
	_, err := NewRecord("Ann42")
	if err == nil {
		t.Fatal("NewRecord with digits in name succeeded, want validation error")
	}
	var valErr *field.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error is %T, want *field.ValidationError", err)
	}
}

func TestRecord_AddPhone_KeepsOrderAndDuplicates(t *testing.T) {
	rec := mustRecord(t, "Ann", "1234567890", "0987654321", "1234567890")

	got := phoneStrings(rec)
	want := []string{"1234567890", "0987654321", "1234567890"}
	if len(got) != len(want) {
		t.Fatalf("phone count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phones[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecord_AddPhone_Invalid(t *testing.T) {
	rec := mustRecord(t, "Ann")
	if err := rec.AddPhone("123"); err == nil {
		t.Fatal("AddPhone(\"123\") succeeded, want validation error")
	}
	if len(rec.Phones()) != 0 {
		t.Errorf("invalid phone was stored: %v", phoneStrings(rec))
	}
}

func TestRecord_RemovePhone_AllMatches(t *testing.T) {
	rec := mustRecord(t, "Ann", "1111111111", "2222222222", "1111111111")

	rec.RemovePhone("1111111111")

	got := phoneStrings(rec)
	if len(got) != 1 || got[0] != "2222222222" {
		t.Errorf("phones after remove = %v, want [2222222222]", got)
	}
}

func TestRecord_RemovePhone_AbsentIsNoop(t *testing.T) {
	rec := mustRecord(t, "Ann", "1111111111")

	rec.RemovePhone("9999999999")

	got := phoneStrings(rec)
	if len(got) != 1 || got[0] != "1111111111" {
		t.Errorf("phones after no-op remove = %v, want [1111111111]", got)
	}
}

func TestRecord_EditPhone_FirstMatchOnly(t *testing.T) {
	rec := mustRecord(t, "Ann", "1111111111", "1111111111")

	if err := rec.EditPhone("1111111111", "2222222222"); err != nil {
		t.Fatalf("EditPhone error: %v", err)
	}

	got := phoneStrings(rec)
	want := []string{"2222222222", "1111111111"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phones[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// Editing a phone that is not on the record changes nothing and
// reports no error. Long-standing behavior, kept on purpose.
func TestRecord_EditPhone_AbsentOldIsNoop(t *testing.T) {
	rec := mustRecord(t, "Ann", "1234567890")

	if err := rec.EditPhone("0000000000", "1111111111"); err != nil {
		t.Fatalf("EditPhone on absent old phone returned error: %v", err)
	}

	got := phoneStrings(rec)
	if len(got) != 1 || got[0] != "1234567890" {
		t.Errorf("phones = %v, want [1234567890] unchanged", got)
	}
}

func TestRecord_EditPhone_InvalidNew(t *testing.T) {
	rec := mustRecord(t, "Ann", "1234567890")

	if err := rec.EditPhone("1234567890", "12"); err == nil {
		t.Fatal("EditPhone with invalid new phone succeeded, want validation error")
	}
	got := phoneStrings(rec)
	if got[0] != "1234567890" {
		t.Errorf("phone was replaced by invalid value: %v", got)
	}
}

func TestRecord_AddBirthday_Overwrites(t *testing.T) {
	rec := mustRecord(t, "Ann")

	if err := rec.AddBirthday("01.01.1990"); err != nil {
		t.Fatalf("AddBirthday error: %v", err)
	}
	if err := rec.AddBirthday("02.02.1992"); err != nil {
		t.Fatalf("AddBirthday error: %v", err)
	}

	if got := rec.Birthday().String(); got != "02.02.1992" {
		t.Errorf("birthday = %q, want the second value \"02.02.1992\"", got)
	}
}

func TestRecord_AddBirthday_InvalidLeavesOld(t *testing.T) {
	rec := mustRecord(t, "Ann")
	if err := rec.AddBirthday("01.01.1990"); err != nil {
		t.Fatalf("AddBirthday error: %v", err)
	}

	if err := rec.AddBirthday("31.02.1990"); err == nil {
		t.Fatal("AddBirthday(\"31.02.1990\") succeeded, want validation error")
	}
	if got := rec.Birthday().String(); got != "01.01.1990" {
		t.Errorf("birthday = %q, want the earlier valid value kept", got)
	}
}

func TestRecord_FindPhone(t *testing.T) {
	rec := mustRecord(t, "Ann", "1111111111", "2222222222")

	p, ok := rec.FindPhone("2222222222")
	if !ok {
		t.Fatal("FindPhone did not find a stored phone")
	}
	if p.String() != "2222222222" {
		t.Errorf("FindPhone = %q, want \"2222222222\"", p.String())
	}

	if _, ok := rec.FindPhone("3333333333"); ok {
		t.Error("FindPhone reported a phone that was never added")
	}
}

func TestRecord_String(t *testing.T) {
	rec := mustRecord(t, "Ann", "1111111111", "2222222222")

	want := "Contact name: Ann, phones: 1111111111; 2222222222"
	if got := rec.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if err := rec.AddBirthday("15.06.1990"); err != nil {
		t.Fatalf("AddBirthday error: %v", err)
	}
	want += ", birthday: 15.06.1990"
	if got := rec.String(); got != want {
		t.Errorf("String() with birthday = %q, want %q", got, want)
	}
}
