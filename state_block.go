package go_nano

import (
	"fmt"
)

// StateBlock is the universal block type. Link holds either a destination
// public key (send) or a source block hash (receive); both are 32 bytes.
type StateBlock struct {
	Account        PublicKey
	Previous       BlockHash
	Representative PublicKey
	Balance        Amount
	Link           [32]byte
}

func (b StateBlock) Type() BlockType { return BLOCK_TYPE_STATE }

// statePreamble is 31 zero bytes followed by the state block type.
var statePreamble = func() [32]byte {
	var p [32]byte
	p[31] = STATE_BLOCK_PREAMBLE_TYPE
	return p
}()

// Hash returns H(preamble || account || previous || representative ||
// balance || link).
func (b StateBlock) Hash() BlockHash {
	return hashFields(statePreamble[:], b.Account[:], b.Previous[:], b.Representative[:], b.Balance[:], b.Link[:])
}

// StateBlockData describes a state block in its external string form.
type StateBlockData struct {
	Previous       string // hex block hash; all zeros for an account's first block
	Representative string // address
	Balance        string // raw decimal
	Link           string // address or hex block hash
	Work           string // hex work; empty to fill later
}

// SignedStateBlock is a hashed and signed state block with its rendered
// fields.
type SignedStateBlock struct {
	Block         StateBlock
	Hash          BlockHash
	Signature     Signature
	Account       string
	LinkAsAccount string
	Work          string
}

// ParseLink decodes a link given as an address or as a hex block hash.
func ParseLink(link string) ([32]byte, bool, error) {
	if pk, err := ParseAddress(link); err == nil {
		return pk, true, nil
	}
	h, err := ParseBlockHash(link)
	if err != nil {
		return [32]byte{}, false, NewCodecError("parse link", link, ErrInvalidArgument)
	}
	return h, false, nil
}

// CreateStateBlock validates data, hashes the resulting state block and
// signs it with sk. The account, and a link given as a hash, are rendered
// with prefix; a link given as an address is returned as given.
func CreateStateBlock(sk SecretKey, data StateBlockData, prefix string) (*SignedStateBlock, error) {
	previous, err := ParseBlockHash(data.Previous)
	if err != nil {
		return nil, fmt.Errorf("previous is not valid: %w", err)
	}
	representative, err := ParseAddress(data.Representative)
	if err != nil {
		return nil, fmt.Errorf("representative is not valid: %w", err)
	}
	if !CheckAmount(data.Balance) {
		return nil, NewCodecError("create state block", data.Balance, ErrInvalidAmount)
	}
	balance, err := AmountFromString(data.Balance)
	if err != nil {
		return nil, fmt.Errorf("balance is not valid: %w", err)
	}
	link, linkIsAccount, err := ParseLink(data.Link)
	if err != nil {
		return nil, fmt.Errorf("link is not valid: %w", err)
	}
	if data.Work != "" && !CheckWork(data.Work) {
		return nil, NewCodecError("create state block", data.Work, ErrInvalidLength)
	}

	kp := NewKeyPair(sk)
	block := StateBlock{
		Account:        kp.PublicKey(),
		Previous:       previous,
		Representative: representative,
		Balance:        balance,
		Link:           link,
	}
	hash := block.Hash()

	linkAsAccount := data.Link
	if !linkIsAccount {
		linkAsAccount = DeriveAddress(PublicKey(link), prefix)
	}

	return &SignedStateBlock{
		Block:         block,
		Hash:          hash,
		Signature:     kp.Sign(hash),
		Account:       kp.Address(prefix),
		LinkAsAccount: linkAsAccount,
		Work:          data.Work,
	}, nil
}
