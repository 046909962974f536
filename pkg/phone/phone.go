// Package phone 塞内加尔手机号处理
package phone

import "strings"

// CountryPrefix 塞内加尔国际区号
const CountryPrefix = "221"

// localNumberLength 本地号码位数（不含区号）
const localNumberLength = 9

// Normalize 将本地手机号规范化为国际格式
//
// 规则：
//  1. 去掉所有非数字字符
//  2. 纯数字串不以 "221" 开头且正好 9 位时，补上 "221" 前缀
//  3. 其余情况原样返回，畸形号码不报错，由网关自行拒绝
//
// 纯函数，无副作用
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if !strings.HasPrefix(digits, CountryPrefix) && len(digits) == localNumberLength {
		return CountryPrefix + digits
	}
	return digits
}
