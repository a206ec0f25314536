package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "123456" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPassword(hash, "123456") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "654321") {
		t.Error("wrong password accepted")
	}
}
