package paytech

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReference_Pattern(t *testing.T) {
	pattern := regexp.MustCompile(`^GMP-\d{13,}-\d{1,4}$`)

	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		assert.Regexp(t, pattern, ref)
	}
}

func TestGenerateReference_Distinct(t *testing.T) {
	// 同一毫秒内靠随机后缀区分，碰撞概率极低
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[GenerateReference()] = true
	}
	// 允许个别同毫秒同随机数的碰撞，但绝大多数应当不同
	assert.Greater(t, len(seen), 990)
}
