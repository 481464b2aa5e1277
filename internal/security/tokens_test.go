package security

import (
	"testing"
	"time"
)

func TestTokenProvider_IssueAndValidate(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, exp, err := p.IssueAccess("u1", "s1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if token == "" {
		t.Fatal("access token empty")
	}
	if !exp.After(time.Now()) {
		t.Fatal("expires at in the past")
	}
	uid, sid, err := p.ValidateAccess(token)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if uid != "u1" || sid != "s1" {
		t.Errorf("ValidateAccess = %q, %q; want u1, s1", uid, sid)
	}
}

func TestTokenProvider_ValidateAccessInvalid(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	if _, _, err := p.ValidateAccess("invalid-token"); err != ErrInvalidToken {
		t.Errorf("ValidateAccess: want ErrInvalidToken, got %v", err)
	}
}

func TestTokenProvider_Expired(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	issued := time.Now().UTC().Add(-time.Hour)
	p.now = func() time.Time { return issued }
	token, _, err := p.IssueAccess("u1", "")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	p.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, _, err := p.ValidateAccess(token); err != ErrInvalidToken {
		t.Errorf("expired token: want ErrInvalidToken, got %v", err)
	}
}

func TestTokenProvider_WrongIssuerOrAudience(t *testing.T) {
	signer, err := ParsePrivateKey(TestPrivateKeyPEM)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	pub, err := ParsePublicKey(TestPublicKeyPEM)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	verifier := NewTokenProvider(nil, pub, TestIssuer, TestAudience, time.Minute)

	for name, issuer := range map[string]*TokenProvider{
		"issuer":   NewTokenProvider(signer, pub, "other-issuer", TestAudience, time.Minute),
		"audience": NewTokenProvider(signer, pub, TestIssuer, "other-audience", time.Minute),
	} {
		token, _, err := issuer.IssueAccess("u1", "")
		if err != nil {
			t.Fatalf("%s: IssueAccess: %v", name, err)
		}
		if _, _, err := verifier.ValidateAccess(token); err != ErrInvalidToken {
			t.Errorf("wrong %s: want ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestTokenProvider_ValidateOnly(t *testing.T) {
	pub, err := ParsePublicKey(TestPublicKeyPEM)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	p := NewTokenProvider(nil, pub, TestIssuer, TestAudience, time.Minute)
	if _, _, err := p.IssueAccess("u1", ""); err != ErrNoSigningKey {
		t.Errorf("IssueAccess without key: want ErrNoSigningKey, got %v", err)
	}
}

func TestTokenProvider_EmptySubjectRejected(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, err := p.IssueAccess("", "")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, _, err := p.ValidateAccess(token); err != ErrInvalidToken {
		t.Errorf("empty subject: want ErrInvalidToken, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	testCases := map[string]string{
		"Bearer token123":       "token123",
		"bearer token123":       "token123",
		"  Bearer   token123  ": "token123",
		"Basic token123":        "",
		"Bearer":                "",
		"":                      "",
	}
	for in, want := range testCases {
		if got := BearerToken(in); got != want {
			t.Errorf("BearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}
