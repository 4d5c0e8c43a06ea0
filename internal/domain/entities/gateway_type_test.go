package entities

import "testing"

func TestGatewayTypeString(t *testing.T) {
	cases := []struct {
		id   GatewayType
		want string
	}{
		{GatewayTypePayload, "Payload"},
		{GatewayTypeCardConnect, "CardConnect"},
		{GatewayTypeMercadoPago, "MercadoPago"},
		{GatewayType(99), "Unknown"},
		{GatewayType(0), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.id.String(); got != tc.want {
			t.Fatalf("GatewayType(%d).String() = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestGatewayIdentityHasCredentialKeys(t *testing.T) {
	identity := GatewayIdentity{Credentials: map[string]string{
		"username":   "merchant",
		"password":   "s3cret",
		"merchantId": "12345",
		"empty":      "",
	}}

	t.Run("all present", func(t *testing.T) {
		if !identity.HasCredentialKeys([]string{"username", "password", "merchantId"}) {
			t.Fatal("expected required keys to be present")
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if identity.HasCredentialKeys([]string{"username", "apiKey"}) {
			t.Fatal("expected missing key to fail")
		}
	})

	t.Run("empty value counts as missing", func(t *testing.T) {
		if identity.HasCredentialKeys([]string{"empty"}) {
			t.Fatal("expected empty value to fail")
		}
	})

	t.Run("nil map", func(t *testing.T) {
		none := GatewayIdentity{}
		if none.HasCredentialKeys([]string{"apiKey"}) {
			t.Fatal("expected nil credential map to fail")
		}
		if !none.HasCredentialKeys(nil) {
			t.Fatal("expected no required keys to pass")
		}
	})
}
