package ecc_test

import (
	"math/big"
	"testing"

	"phantom.dev/curves"
	"phantom.dev/ecc"
	"phantom.dev/mp"
)

func scalarLimbs(x uint64) []mp.Word { return []mp.Word{x} }

func bigToScalarLimbs(x *big.Int, k int) []mp.Word {
	limbs := make([]mp.Word, k)
	t := new(big.Int).Set(x)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := 0; i < k; i++ {
		word := new(big.Int).And(t, mask)
		limbs[i] = mp.Word(word.Uint64())
		t.Rsh(t, 64)
	}
	return limbs
}

func basePoint(t *testing.T, p *curves.Param) *ecc.WeierstrassPrimeJacobian {
	t.Helper()
	g := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
	gAff := &ecc.WeierstrassPrimeAffine{X: p.Gx, Y: p.Gy}
	g.ConvertFrom(p.Cfg, gAff)
	return g
}

func assertAffineEquals(t *testing.T, got *ecc.WeierstrassPrimeAffine, wantXHex, wantYHex string) {
	t.Helper()
	wantX := hexBig(wantXHex)
	wantY := hexBig(wantYHex)
	if limbsToBig(got.X).Cmp(wantX) != 0 {
		t.Fatalf("x = %x, want %x", limbsToBig(got.X), wantX)
	}
	if limbsToBig(got.Y).Cmp(wantY) != 0 {
		t.Fatalf("y = %x, want %x", limbsToBig(got.Y), wantY)
	}
}

var kgVectors = []struct {
	k    uint64
	x, y string
}{
	{5, "2f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4", "d8ac222636e5e3d6d4dba9dda6c9c426f788271bab0d6840dca87d3aa6ac62d6"},
	{11, "774ae7f858a9411e5ef4246b70c65aac5649980be5c17891bbec17895da008cb", "d984a032eb6b5e190243dd56d7b7b365372db1e2dff9d6a8301d74c9c953c61b"},
	{255, "1b38903a43f7f114ed4500b4eac7083fdefece1cf29c63528d563446f972c180", "4036edc931a60ae889353f77fd53de4a2708b26b6f5da72ad3394119daf408f9"},
}

func TestEngineBinaryRecoderMatchesKnownMultiples(t *testing.T) {
	p := curves.SECP256K1()
	for _, v := range kgVectors {
		g := basePoint(t, p)
		eng := ecc.NewEngine[*ecc.WeierstrassPrimeJacobian](p.Cfg, ecc.BinaryRecoder{})
		if st := eng.Setup(g); st != ecc.PointOK {
			t.Fatalf("Setup status = %v", st)
		}
		zero := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
		result, st := eng.ScalarPointMul(scalarLimbs(v.k), p.Bits, zero)
		if st != ecc.PointOK {
			t.Fatalf("k=%d: ScalarPointMul status = %v", v.k, st)
		}
		aff := result.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
		assertAffineEquals(t, aff, v.x, v.y)
	}
}

func TestEngineNAFwRecoderMatchesKnownMultiples(t *testing.T) {
	p := curves.SECP256K1()
	for _, v := range kgVectors {
		g := basePoint(t, p)
		eng := ecc.NewEngine[*ecc.WeierstrassPrimeJacobian](p.Cfg, ecc.NAFwRecoder{W: 4})
		if st := eng.Setup(g); st != ecc.PointOK {
			t.Fatalf("Setup status = %v", st)
		}
		zero := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
		result, st := eng.ScalarPointMul(scalarLimbs(v.k), p.Bits, zero)
		if st != ecc.PointOK {
			t.Fatalf("k=%d: ScalarPointMul status = %v", v.k, st)
		}
		aff := result.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
		assertAffineEquals(t, aff, v.x, v.y)
	}
}

func TestEnginePREwRecoderMatchesKnownMultiples(t *testing.T) {
	p := curves.SECP256K1()
	for _, v := range kgVectors {
		g := basePoint(t, p)
		eng := ecc.NewEngine[*ecc.WeierstrassPrimeJacobian](p.Cfg, ecc.PREwRecoder{W: 4})
		if st := eng.Setup(g); st != ecc.PointOK {
			t.Fatalf("Setup status = %v", st)
		}
		zero := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
		result, st := eng.ScalarPointMul(scalarLimbs(v.k), p.Bits, zero)
		if st != ecc.PointOK {
			t.Fatalf("k=%d: ScalarPointMul status = %v", v.k, st)
		}
		aff := result.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
		assertAffineEquals(t, aff, v.x, v.y)
	}
}

// TestEngineSecp192r1KnownMultiples reproduces the two literal secp192r1
// scalar-multiplication scenarios: k=2 against the standard base point,
// and k=order-1 (equivalently -G) against the same base point.
func TestEngineSecp192r1KnownMultiples(t *testing.T) {
	p := curves.SECP192R1()
	orderMinus1, ok := new(big.Int).SetString("6277101735386680763835789423176059013767194773182842284080", 10)
	if !ok {
		t.Fatal("bad decimal constant")
	}
	vectors := []struct {
		k    []mp.Word
		x, y string
	}{
		{
			scalarLimbs(2),
			"dafebf5828783f2ad35534631588a3f629a70fb16982a888",
			"dd6bda0d993da0fa46b27bbc141b868f59331afa5c7e93ab",
		},
		{
			bigToScalarLimbs(orderMinus1, p.Cfg.Limbs()),
			"188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012",
			"f8e6d46a003725879cefee1294db32298c06885ee186b7ee",
		},
	}
	for _, v := range vectors {
		g := basePoint(t, p)
		eng := ecc.NewEngine[*ecc.WeierstrassPrimeJacobian](p.Cfg, ecc.NAFwRecoder{W: 4})
		if st := eng.Setup(g); st != ecc.PointOK {
			t.Fatalf("Setup status = %v", st)
		}
		zero := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
		result, st := eng.ScalarPointMul(v.k, p.Bits, zero)
		if st != ecc.PointOK {
			t.Fatalf("ScalarPointMul status = %v", st)
		}
		aff := result.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
		assertAffineEquals(t, aff, v.x, v.y)
	}
}

func TestScalarPointMulDualMatchesShamirSum(t *testing.T) {
	p := curves.SECP256K1()
	// k1*G + k2*G == (k1+k2)*G; verified against the (k1+k2) single-scalar
	// vector above by choosing k1=5, k2=6 (sum 11).
	g1 := basePoint(t, p)
	g2Aff := g1.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
	g2 := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
	g2.ConvertFrom(p.Cfg, g2Aff)

	dual := ecc.BinaryDualRecoder{K2: scalarLimbs(6)}
	eng := ecc.NewEngine[*ecc.WeierstrassPrimeJacobian](p.Cfg, dual)
	if st := eng.Setup(g1); st != ecc.PointOK {
		t.Fatalf("Setup status = %v", st)
	}
	zero := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
	result, st := eng.ScalarPointMulDual(scalarLimbs(5), p.Bits, g2, zero)
	if st != ecc.PointOK {
		t.Fatalf("ScalarPointMulDual status = %v", st)
	}
	aff := result.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
	assertAffineEquals(t, aff, kgVectors[1].x, kgVectors[1].y) // kgVectors[1] is k=11
}
