package config

import (
	"flag"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/kangaroo"
)

const puzzle20PubKey = "033c4a45cbd643ff97d77f41ea37e843648d50fd894b864b0d52febc62f6454f7c"

func TestParseBigInt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"12345", "12345"},
		{"0x10", "16"},
		{"0X10", "16"},
		{"ff", "255"},
		{" 0xd2c55 ", "863317"},
		{"1_000_000", "1000000"},
		{"0x4000000000000000000000000000000000", "21778071482940061661655974875633165533184"},
	}
	for _, tt := range tests {
		got, err := ParseBigInt(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got.Text(10), "input %q", tt.in)
	}

	for _, bad := range []string{"", "0x", "12z", "-5", "0x-5"} {
		_, err := ParseBigInt(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, DefaultPublicKey, s.PublicKey)
	assert.Equal(t, 135, s.Bits)
	assert.Equal(t, DefaultOutput, s.Output)
	assert.Equal(t, kangaroo.DefaultConfig(), s.Config())

	target, err := s.Target(curve.Secp256k1())
	require.NoError(t, err)
	assert.Equal(t, 0, target.Start.Cmp(new(big.Int).Lsh(big.NewInt(1), 134)))
}

func TestParse(t *testing.T) {
	data := []byte(`
public_key: ` + puzzle20PubKey + `
bits: 20
tame_herd: 16
wild_herd: 16
dp_rarity: 32
`)
	s, err := Parse(data, Default())
	require.NoError(t, err)

	assert.Equal(t, puzzle20PubKey, s.PublicKey)
	assert.Equal(t, 20, s.Bits)
	assert.Equal(t, 16, s.TameHerd)
	assert.Equal(t, uint64(32), s.DPRarity)
	assert.Equal(t, 50, s.HopModulo, "missing keys keep defaults")
	assert.Equal(t, DefaultOutput, s.Output)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("tame_herds: 4\n"), Default())
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil, Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "bits: 20\ntame_herd: 16\nwild_herd: 16\nseed: 5\n")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flagged := Default()
	BindFlags(fs, &flagged)
	require.NoError(t, fs.Parse([]string{"--tame", "64", "--output", "out.txt"}))

	s, err := Resolve(fs, flagged, path)
	require.NoError(t, err)

	assert.Equal(t, 64, s.TameHerd, "explicit flag wins")
	assert.Equal(t, "out.txt", s.Output)
	assert.Equal(t, 16, s.WildHerd, "file value kept")
	assert.Equal(t, 20, s.Bits)
	assert.Equal(t, int64(5), s.Seed)
	assert.Equal(t, 50, s.HopModulo, "default kept")
}

func TestResolveWithoutFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flagged := Default()
	BindFlags(fs, &flagged)
	require.NoError(t, fs.Parse([]string{"--bits", "20", "--public-key", puzzle20PubKey, "--dp-rarity", "64"}))

	s, err := Resolve(fs, flagged, "")
	require.NoError(t, err)
	assert.Equal(t, 20, s.Bits)
	assert.Equal(t, uint64(64), s.DPRarity)
	assert.Equal(t, puzzle20PubKey, s.PublicKey)
}

func TestSettingsTarget(t *testing.T) {
	c := curve.Secp256k1()

	s := Default()
	s.PublicKey = puzzle20PubKey
	s.Start = "0x80000"
	s.End = "1048575"
	target, err := s.Target(c)
	require.NoError(t, err)
	assert.Equal(t, int64(0x80000), target.Start.Int64())
	assert.Equal(t, int64(0xfffff), target.End.Int64())
	assert.Equal(t, 20, target.Bits)

	s.End = ""
	_, err = s.Target(c)
	assert.ErrorIs(t, err, kangaroo.ErrInvalidRange)

	s.End = "nope!"
	_, err = s.Target(c)
	assert.Error(t, err)

	s.Start, s.End = "", ""
	s.Bits = 20
	target, err = s.Target(c)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<19), target.Start.Int64())
}
