package objects

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"strconv"

	"github.com/klauspost/compress/zlib"
	"github.com/mygit-vcs/mygit/utils"
)

// Frame builds the canonical on-wire form of an object:
// "<type> <size>\0<content>". This exact byte sequence is what gets
// hashed and, after compression, what gets stored on disk.
func Frame(objType utils.ObjectType, content []byte) ([]byte, error) {
	if !objType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, objType)
	}

	header := fmt.Sprintf("%v %d\x00", objType, len(content))
	return append([]byte(header), content...), nil
}

// Unframe parses a framed object back into its type and content.
// The header runs up to the first NUL byte and holds the type tag and the
// declared content size separated by a single space; the declared size must
// match the actual byte count after the NUL exactly.
func Unframe(data []byte) (utils.ObjectType, []byte, error) {
	nullByteIndex := bytes.IndexByte(data, 0)
	if nullByteIndex == -1 {
		return "", nil, fmt.Errorf("%w: no null byte found", ErrMalformedHeader)
	}

	header := data[:nullByteIndex]
	content := data[nullByteIndex+1:]

	typeTag, sizeField, found := bytes.Cut(header, []byte(" "))
	if !found {
		return "", nil, fmt.Errorf("%w: no space separator in %q", ErrMalformedHeader, header)
	}

	objType := utils.ObjectType(typeTag)
	if !objType.IsValid() {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownType, typeTag)
	}

	declaredSize, err := strconv.Atoi(string(sizeField))
	if err != nil {
		return "", nil, fmt.Errorf("%w: size field %q is not a decimal number", ErrMalformedHeader, sizeField)
	}

	if declaredSize != len(content) {
		return "", nil, fmt.Errorf("%w: header declares %d bytes, found %d", ErrSizeMismatch, declaredSize, len(content))
	}

	return objType, content, nil
}

// ComputeKey calculates the SHA-1 object key over the framed representation.
// Hashing the header along with the content keeps objects of different types
// from colliding even when their raw payloads are identical.
func ComputeKey(objType utils.ObjectType, content []byte) (string, error) {
	framed, err := Frame(objType, content)
	if err != nil {
		return "", fmt.Errorf("hash not computed: %w", err)
	}

	hash := sha1.Sum(framed)
	return fmt.Sprintf("%x", hash), nil
}

// Compress applies zlib compression to a framed object for durable storage.
func Compress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)

	if _, err := writer.Write(data); err != nil {
		return nil, err
	}

	// Close flushes any buffered data
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// Decompress reverses Compress. Input that is not valid zlib data, including
// stored objects whose bytes were damaged on disk, fails with ErrCorruptObject.
func Decompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptObject, err)
	}
	defer reader.Close()

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptObject, err)
	}

	return buffer.Bytes(), nil
}
