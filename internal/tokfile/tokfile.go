// Package tokfile persists a Vocabulary and a Rules list to the binary
// tokenizer file format: a fixed magic and version header, the vocabulary
// as length-prefixed byte strings, then the merge rules as uint32
// triples, all in a fixed byte order so the format is portable across
// host endianness.
package tokfile

import (
	"encoding/binary"
	"io"

	"github.com/agentstation/bpec"
	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/vocab"
)

var magic = [4]byte{'B', 'P', 'E', 'C'}

const formatVersion uint32 = 1

// Save writes vocab and rules to w in the tokenizer file format.
func Save(w io.Writer, v *vocab.Vocabulary, rules *merge.Rules) error {
	if _, err := w.Write(magic[:]); err != nil {
		return bpec.NewIOError("write", "", err)
	}
	if err := writeU32(w, formatVersion); err != nil {
		return err
	}
	if err := writeU32(w, uint32(v.Size())); err != nil {
		return err
	}
	for id := 0; id < v.Size(); id++ {
		b := v.Bytes(id)
		if err := writeU32(w, uint32(len(b))); err != nil {
			return err
		}
		if len(b) > 0 {
			if _, err := w.Write(b); err != nil {
				return bpec.NewIOError("write", "", err)
			}
		}
	}

	all := rules.All()
	if err := writeU32(w, uint32(len(all))); err != nil {
		return err
	}
	for _, r := range all {
		if err := writeU32(w, uint32(r.Left)); err != nil {
			return err
		}
		if err := writeU32(w, uint32(r.Right)); err != nil {
			return err
		}
		if err := writeU32(w, uint32(r.Result)); err != nil {
			return err
		}
	}
	return nil
}

// Load reconstructs a Vocabulary and Rules from r. It returns
// *bpec.IOError on a read failure, including a file that ends early, and
// bpec.ErrCorruptTokenizer itself if the file fails a structural
// invariant check.
func Load(r io.Reader) (*vocab.Vocabulary, *merge.Rules, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, nil, bpec.NewIOError("read", "", err)
	}
	if gotMagic != magic {
		return nil, nil, bpec.ErrCorruptTokenizer
	}

	version, err := readU32(r)
	if err != nil {
		return nil, nil, err
	}
	if version != formatVersion {
		return nil, nil, bpec.ErrCorruptTokenizer
	}

	tokenCount, err := readU32(r)
	if err != nil {
		return nil, nil, err
	}

	v := vocab.New(int(tokenCount))
	for i := uint32(0); i < tokenCount; i++ {
		length, err := readU32(r)
		if err != nil {
			return nil, nil, err
		}
		buf := make([]byte, length)
		if length > 0 {
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, nil, bpec.NewIOError("read", "", err)
			}
		}
		if _, err := v.Add(buf); err != nil {
			return nil, nil, err
		}
	}

	ruleCount, err := readU32(r)
	if err != nil {
		return nil, nil, err
	}

	rules := merge.New(int(ruleCount))
	for i := uint32(0); i < ruleCount; i++ {
		left, err := readU32(r)
		if err != nil {
			return nil, nil, err
		}
		right, err := readU32(r)
		if err != nil {
			return nil, nil, err
		}
		result, err := readU32(r)
		if err != nil {
			return nil, nil, err
		}

		want := uint32(256 + i)
		if result != want || left >= result || right >= result {
			return nil, nil, bpec.ErrCorruptTokenizer
		}
		if err := rules.Append(int(left), int(right), int(result)); err != nil {
			return nil, nil, err
		}
	}

	return v, rules, nil
}

func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return bpec.NewIOError("write", "", err)
	}
	return nil
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, bpec.NewIOError("read", "", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
