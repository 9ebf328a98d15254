package ecc

import (
	"testing"

	"phantom.dev/mp"
)

func cfgMod97(t *testing.T) *Config {
	t.Helper()
	mod := mp.NewNaiveModConfig([]mp.Word{97})
	return NewConfig(mod, []mp.Word{0}, []mp.Word{7}, nil)
}

func TestConfigAddSubMod97(t *testing.T) {
	c := cfgMod97(t)
	x := []mp.Word{90}
	y := []mp.Word{10}
	z := c.NewElement()
	c.Add(z, x, y) // 90+10=100 -> 3 mod 97
	if z[0] != 3 {
		t.Fatalf("90+10 mod 97 = %d, want 3", z[0])
	}
	back := c.NewElement()
	c.Sub(back, z, y)
	if back[0] != x[0] {
		t.Fatalf("(90+10)-10 mod 97 = %d, want 90", back[0])
	}
}

func TestConfigMulMod97(t *testing.T) {
	c := cfgMod97(t)
	z := c.NewElement()
	c.Mul(z, []mp.Word{11}, []mp.Word{13}) // 143 mod 97 = 46
	if z[0] != 46 {
		t.Fatalf("11*13 mod 97 = %d, want 46", z[0])
	}
}

func TestConfigInverseMod97(t *testing.T) {
	c := cfgMod97(t)
	z := c.NewElement()
	c.Inverse(z, []mp.Word{5}) // 5^-1 mod 97 = 39
	if z[0] != 39 {
		t.Fatalf("5^-1 mod 97 = %d, want 39", z[0])
	}
	check := c.NewElement()
	c.Mul(check, z, []mp.Word{5})
	if check[0] != 1 {
		t.Fatalf("5 * 5^-1 mod 97 = %d, want 1", check[0])
	}
}

func TestConfigSqrtGeneralTonelliShanks(t *testing.T) {
	// 97 mod 4 == 1, so Sqrt must take the general Tonelli-Shanks branch
	// rather than the 3-mod-4 shortcut.
	c := cfgMod97(t)
	asq := []mp.Word{3} // 10^2 mod 97 == 3
	z := c.NewElement()
	if ok := c.Sqrt(z, asq); !ok {
		t.Fatal("Sqrt(3) mod 97 should exist (3 == 10^2 mod 97)")
	}
	check := c.NewElement()
	c.Sqr(check, z)
	if check[0] != asq[0] {
		t.Fatalf("Sqrt(3)^2 mod 97 = %d, want 3", check[0])
	}
	if z[0] != 10 && z[0] != 87 {
		t.Fatalf("Sqrt(3) mod 97 = %d, want 10 or 87", z[0])
	}
}

func TestConfigSqrtThreeMod4Shortcut(t *testing.T) {
	mod := mp.NewNaiveModConfig([]mp.Word{11}) // 11 mod 4 == 3
	c := NewConfig(mod, []mp.Word{0}, []mp.Word{7}, nil)
	asq := []mp.Word{9} // 3^2 mod 11 == 9
	z := c.NewElement()
	if ok := c.Sqrt(z, asq); !ok {
		t.Fatal("Sqrt(9) mod 11 should exist")
	}
	check := c.NewElement()
	c.Sqr(check, z)
	if check[0] != asq[0] {
		t.Fatalf("Sqrt(9)^2 mod 11 = %d, want 9", check[0])
	}
}

func TestConfigFastPathFlags(t *testing.T) {
	mod := mp.NewNaiveModConfig([]mp.Word{97})
	c := NewConfig(mod, []mp.Word{0}, []mp.Word{1}, nil)
	if !c.AIsZero {
		t.Fatal("AIsZero should be true for a=0")
	}
	if !c.BIsOne {
		t.Fatal("BIsOne should be true for b=1")
	}
	cMinus3 := NewConfig(mod, []mp.Word{94}, []mp.Word{1}, nil) // 94 == -3 mod 97
	if !cMinus3.AIsMinus3 {
		t.Fatal("AIsMinus3 should be true for a == mod-3")
	}
}
