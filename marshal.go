package bitseq

import (
	"encoding/binary"
	"encoding/json"
	"errors"
)

// ErrReconstruct is returned when a serialized sequence cannot be rebuilt
// from its raw parts.
var ErrReconstruct = errors.New("failed to recreate the sequence from its raw parts")

// MarshalBinary encodes the sequence as its symbol count followed by its
// backing words.  No alphabet metadata is embedded: both sides must agree
// on the codec type, and the encodings of two different alphabets are not
// distinguishable on the wire.
func (q Seq[S, C]) MarshalBinary() ([]byte, error) {
	buf := binary.AppendUvarint(nil, uint64(q.length))
	buf = binary.AppendUvarint(buf, uint64(len(q.words)))
	for _, w := range q.words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return buf, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary, reconstructing
// the sequence through FromRaw.  Any inconsistency between the declared
// symbol count, the word count and the payload yields ErrReconstruct.
func (q *Seq[S, C]) UnmarshalBinary(data []byte) error {
	length, n := binary.Uvarint(data)
	if n <= 0 {
		return ErrReconstruct
	}
	data = data[n:]
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return ErrReconstruct
	}
	data = data[n:]
	if count > uint64(len(data))/8 || uint64(len(data)) != 8*count {
		return ErrReconstruct
	}
	words := make([]uint64, count)
	for index := range words {
		words[index] = binary.LittleEndian.Uint64(data[8*index:])
	}
	decoded, ok := FromRaw[S, C](int(length), words)
	if !ok {
		return ErrReconstruct
	}
	*q = decoded
	return nil
}

// MarshalJSON renders the sequence as its text form.
func (q Seq[S, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// UnmarshalJSON parses a JSON string in the sequence's text form.
func (q *Seq[S, C]) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	decoded, err := Parse[S, C](text)
	if err != nil {
		return err
	}
	*q = decoded
	return nil
}
