package tokenfmt

import (
	"errors"
	"testing"
)

type account struct {
	Name    string
	balance int
	Owner   *person
}

type person struct {
	First string
	last  string
}

func TestObjectFieldAccess(t *testing.T) {
	acct := account{Name: "savings", balance: 250, Owner: &person{First: "Ada", last: "Lovelace"}}

	t.Run("exported field", func(t *testing.T) {
		got, err := Format("{Name}", acct)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "savings" {
			t.Errorf("got %q, want %q", got, "savings")
		}
	})

	t.Run("pointer to struct", func(t *testing.T) {
		got, err := Format("{Name}", &acct)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "savings" {
			t.Errorf("got %q, want %q", got, "savings")
		}
	})

	t.Run("nested through pointer", func(t *testing.T) {
		got, err := Format("{Owner.First}", acct)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "Ada" {
			t.Errorf("got %q, want %q", got, "Ada")
		}
	})

	t.Run("explicit Object wrapper", func(t *testing.T) {
		got, err := Format("{Name}", Object(acct))
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "savings" {
			t.Errorf("got %q, want %q", got, "savings")
		}
	})

	t.Run("field names match exactly", func(t *testing.T) {
		_, err := Format("{name}", acct)
		var nfErr *KeyNotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("expected *KeyNotFoundError, got %v", err)
		}
	})
}

func TestVisibilityPolicy(t *testing.T) {
	acct := account{Name: "savings", balance: 250}

	t.Run("unexported hidden by default", func(t *testing.T) {
		_, err := Format("{balance}", acct)
		var nfErr *KeyNotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("expected *KeyNotFoundError, got %v", err)
		}
	})

	t.Run("unexported visible with NonPublicAccess", func(t *testing.T) {
		got, err := Format("{balance}", acct, NonPublicAccess())
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "250" {
			t.Errorf("got %q, want %q", got, "250")
		}
	})

	t.Run("widened access through nested path", func(t *testing.T) {
		acct := account{Owner: &person{last: "Lovelace"}}
		got, err := Format("{Owner.last}", acct, NonPublicAccess())
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "Lovelace" {
			t.Errorf("got %q, want %q", got, "Lovelace")
		}
	})
}

func TestNilPointerField(t *testing.T) {
	acct := account{Name: "empty"}

	t.Run("nil pointer is null", func(t *testing.T) {
		_, err := Format("{Owner.First}", acct)
		var nullErr *NullValueError
		if !errors.As(err, &nullErr) {
			t.Fatalf("expected *NullValueError, got %v", err)
		}
		if nullErr.Key != "Owner" {
			t.Errorf("failing key = %q, want Owner", nullErr.Key)
		}
	})

	t.Run("nullable nil pointer substitutes", func(t *testing.T) {
		got, err := Format("{Owner?nobody.First}", acct)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "nobody" {
			t.Errorf("got %q, want %q", got, "nobody")
		}
	})
}
