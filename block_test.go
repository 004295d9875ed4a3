package go_nano

import (
	"errors"
	"testing"
)

const oneNanoRaw = "1000000000000000000000000000000"

func TestLegacyBlockHashes(t *testing.T) {
	h := mustParseBlockHash(t, signedHashHex)
	pk := mustParsePublicKey(t, zeroSeedPublic0)
	balance, err := AmountFromString(oneNanoRaw)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		block Block
		typ   BlockType
		want  string
	}{
		{"open", OpenBlock{Source: h, Representative: pk, Account: pk}, BLOCK_TYPE_OPEN,
			"71c0af8516507e88a5493da471f49ed0a9d2c823ec09c46aa95f4b58a2209bd7"},
		{"change", ChangeBlock{Previous: h, Representative: pk}, BLOCK_TYPE_CHANGE,
			"3f45a75da671301470aad1797170ba6373e3fe079d67f9909c8ff5bff1cbbf7f"},
		{"send", SendBlock{Previous: h, Destination: pk, Balance: balance}, BLOCK_TYPE_SEND,
			"b66487ce13dfeb9dc983b9865a61e6647d7849c0368f4347e620601a0130f7f7"},
		{"receive", ReceiveBlock{Previous: h}, BLOCK_TYPE_RECEIVE,
			"38f4df011900370ef8df2380f9641aba8d745493342df10b3d8560004c35c218"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.block.Type() != tt.typ {
				t.Errorf("Type() = %s, want %s", tt.block.Type(), tt.typ)
			}
			if got := tt.block.Hash().String(); got != tt.want {
				t.Errorf("Hash() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBlockHashDependsOnFieldOrder(t *testing.T) {
	a := BlockHash{1}
	b := BlockHash{2}
	if HashReceiveBlock(a, b) == HashReceiveBlock(b, a) {
		t.Error("swapping previous and source did not change the hash")
	}

	r := PublicKey{3}
	acct := PublicKey{4}
	if HashOpenBlock(a, r, acct) == HashOpenBlock(a, acct, r) {
		t.Error("swapping representative and account did not change the hash")
	}

	// Change and receive hash the same 64 bytes layout.
	if HashChangeBlock(a, PublicKey(b)) != HashReceiveBlock(a, b) {
		t.Error("change and receive over identical bytes differ")
	}
}

func TestStateBlockHash(t *testing.T) {
	pk := mustParsePublicKey(t, zeroSeedPublic0)
	balance, _ := AmountFromString(oneNanoRaw)
	block := StateBlock{
		Account:        pk,
		Representative: pk,
		Balance:        balance,
		Link:           mustParseBlockHash(t, signedHashHex),
	}

	if block.Type() != BLOCK_TYPE_STATE {
		t.Errorf("Type() = %s", block.Type())
	}
	want := "920797c9fb7790a27d5a7ced8bf142130c2f80802cffbb2a45c5573f72a0f835"
	if got := block.Hash().String(); got != want {
		t.Errorf("Hash() = %s, want %s", got, want)
	}
}

func TestParseLink(t *testing.T) {
	link, isAccount, err := ParseLink(zeroSeedAddressNano)
	if err != nil || !isAccount {
		t.Fatalf("ParseLink(address) = %v, %v", isAccount, err)
	}
	if PublicKey(link).String() != zeroSeedPublic0 {
		t.Errorf("link = %x", link)
	}

	link, isAccount, err = ParseLink(signedHashHex)
	if err != nil || isAccount {
		t.Fatalf("ParseLink(hash) = %v, %v", isAccount, err)
	}
	if BlockHash(link).String() != signedHashHex {
		t.Errorf("link = %x", link)
	}

	if _, _, err := ParseLink("nope"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseLink(nope) error = %v", err)
	}
}

func TestCreateStateBlock(t *testing.T) {
	sk := mustParseSecretKey(t, zeroSeedSecret0)
	data := StateBlockData{
		Previous:       zeroSeedHex,
		Representative: zeroSeedAddressXrb,
		Balance:        oneNanoRaw,
		Link:           signedHashHex,
		Work:           "0000000000010600",
	}

	block, err := CreateStateBlock(sk, data, ADDRESS_PREFIX_NANO)
	if err != nil {
		t.Fatal(err)
	}
	if block.Hash.String() != "920797c9fb7790a27d5a7ced8bf142130c2f80802cffbb2a45c5573f72a0f835" {
		t.Errorf("Hash = %s", block.Hash)
	}
	if block.Account != zeroSeedAddressNano {
		t.Errorf("Account = %s", block.Account)
	}
	if !Verify(block.Hash, block.Signature, block.Block.Account) {
		t.Error("signature does not verify")
	}
	if !CheckAddress(block.LinkAsAccount) {
		t.Errorf("LinkAsAccount %s is not an address", block.LinkAsAccount)
	}
	if block.Work != data.Work {
		t.Errorf("Work = %s", block.Work)
	}
}

func TestCreateStateBlockKeepsLinkAddress(t *testing.T) {
	sk := mustParseSecretKey(t, zeroSeedSecret0)
	data := StateBlockData{
		Previous:       zeroSeedHex,
		Representative: zeroSeedAddressNano,
		Balance:        "0",
		Link:           zeroSeedAddressXrb,
	}

	block, err := CreateStateBlock(sk, data, ADDRESS_PREFIX_NANO)
	if err != nil {
		t.Fatal(err)
	}
	if block.LinkAsAccount != zeroSeedAddressXrb {
		t.Errorf("LinkAsAccount = %s, want %s", block.LinkAsAccount, zeroSeedAddressXrb)
	}
	if PublicKey(block.Block.Link).String() != zeroSeedPublic0 {
		t.Errorf("Link = %x", block.Block.Link)
	}

	// A hash link is rendered with the requested prefix.
	data.Link = zeroSeedPublic0
	block, err = CreateStateBlock(sk, data, ADDRESS_PREFIX_NANO)
	if err != nil {
		t.Fatal(err)
	}
	if block.LinkAsAccount != zeroSeedAddressNano {
		t.Errorf("LinkAsAccount = %s, want %s", block.LinkAsAccount, zeroSeedAddressNano)
	}
}

func TestCreateStateBlockRejects(t *testing.T) {
	sk := mustParseSecretKey(t, zeroSeedSecret0)
	valid := StateBlockData{
		Previous:       zeroSeedHex,
		Representative: zeroSeedAddressNano,
		Balance:        "0",
		Link:           zeroSeedHex,
	}

	tests := []struct {
		name   string
		mutate func(*StateBlockData)
	}{
		{"previous", func(d *StateBlockData) { d.Previous = "00" }},
		{"representative", func(d *StateBlockData) { d.Representative = zeroSeedPublic0 }},
		{"balance leading zero", func(d *StateBlockData) { d.Balance = "01" }},
		{"balance overflow", func(d *StateBlockData) { d.Balance = "340282366920938463463374607431768211456" }},
		{"link", func(d *StateBlockData) { d.Link = "xrb_1" }},
		{"work", func(d *StateBlockData) { d.Work = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid
			tt.mutate(&data)
			if _, err := CreateStateBlock(sk, data, ADDRESS_PREFIX_NANO); err == nil {
				t.Errorf("CreateStateBlock accepted bad %s", tt.name)
			}
		})
	}

	if _, err := CreateStateBlock(sk, valid, ADDRESS_PREFIX_NANO); err != nil {
		t.Errorf("valid data rejected: %v", err)
	}
}
