package lir

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content hashes of canonical printer output.
// Version suffix enables future grammar migration.
const (
	DomainCfg  = "solang/lir/cfg/v1"
	DomainInsn = "solang/lir/insn/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + text). The null byte prevents
// domain/text boundary ambiguity.
func hashWithDomain(domain string, text []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(text)
	return hex.EncodeToString(h.Sum(nil))
}

// CfgHash computes a content hash of a function's canonical rendering.
// Because the printer is deterministic, two IRs hash equal exactly when
// their canonical text is identical; differential tests compare hashes
// instead of holding both texts.
func (p *Printer) CfgHash(cfg *Cfg) (string, error) {
	text, err := p.CfgString(cfg)
	if err != nil {
		return "", err
	}
	return hashWithDomain(DomainCfg, []byte(text)), nil
}

// InsnHash computes a content hash of one instruction's canonical
// rendering.
func (p *Printer) InsnHash(insn Insn) (string, error) {
	text, err := p.InsnString(insn)
	if err != nil {
		return "", err
	}
	return hashWithDomain(DomainInsn, []byte(text)), nil
}
