package go_nano

// Block hashing
//
// Each legacy block subtype hashes a fixed concatenation of fixed-width
// fields with BLAKE2b-256. Field roles are not checked: passing a
// representative where an account belongs produces a different, equally
// well-formed hash.

// BlockType names a block subtype.
type BlockType string

const (
	BLOCK_TYPE_OPEN    BlockType = "open"
	BLOCK_TYPE_CHANGE  BlockType = "change"
	BLOCK_TYPE_SEND    BlockType = "send"
	BLOCK_TYPE_RECEIVE BlockType = "receive"
	BLOCK_TYPE_STATE   BlockType = "state"
)

// Block is implemented by every hashable block subtype.
type Block interface {
	Type() BlockType
	Hash() BlockHash
}

// OpenBlock opens an account chain by receiving from source.
type OpenBlock struct {
	Source         BlockHash
	Representative PublicKey
	Account        PublicKey
}

// ChangeBlock changes the representative of an account.
type ChangeBlock struct {
	Previous       BlockHash
	Representative PublicKey
}

// SendBlock sends funds to destination, leaving balance on the account.
type SendBlock struct {
	Previous    BlockHash
	Destination PublicKey
	Balance     Amount
}

// ReceiveBlock pockets the send identified by source.
type ReceiveBlock struct {
	Previous BlockHash
	Source   BlockHash
}

func (b OpenBlock) Type() BlockType    { return BLOCK_TYPE_OPEN }
func (b ChangeBlock) Type() BlockType  { return BLOCK_TYPE_CHANGE }
func (b SendBlock) Type() BlockType    { return BLOCK_TYPE_SEND }
func (b ReceiveBlock) Type() BlockType { return BLOCK_TYPE_RECEIVE }

func (b OpenBlock) Hash() BlockHash {
	return HashOpenBlock(b.Source, b.Representative, b.Account)
}

func (b ChangeBlock) Hash() BlockHash {
	return HashChangeBlock(b.Previous, b.Representative)
}

func (b SendBlock) Hash() BlockHash {
	return HashSendBlock(b.Previous, b.Destination, b.Balance)
}

func (b ReceiveBlock) Hash() BlockHash {
	return HashReceiveBlock(b.Previous, b.Source)
}

// hashFields hashes the concatenation of fixed-width fields.
func hashFields(fields ...[]byte) BlockHash {
	n := 0
	for _, f := range fields {
		n += len(f)
	}
	preimage := newPreimage(n)
	preimage.WriteFields(fields...)
	return BlockHash(hash256(preimage.Bytes()))
}

// HashOpenBlock returns H(source || representative || account).
func HashOpenBlock(source BlockHash, representative, account PublicKey) BlockHash {
	return hashFields(source[:], representative[:], account[:])
}

// HashChangeBlock returns H(previous || representative).
func HashChangeBlock(previous BlockHash, representative PublicKey) BlockHash {
	return hashFields(previous[:], representative[:])
}

// HashSendBlock returns H(previous || destination || balance).
func HashSendBlock(previous BlockHash, destination PublicKey, balance Amount) BlockHash {
	return hashFields(previous[:], destination[:], balance[:])
}

// HashReceiveBlock returns H(previous || source).
func HashReceiveBlock(previous, source BlockHash) BlockHash {
	return hashFields(previous[:], source[:])
}
