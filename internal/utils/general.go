package utils

import "hash/fnv"

func SliceToMap[T any, K comparable](s []T, getKey func(t T) K) map[K]bool {
	ret := make(map[K]bool)
	for i := 0; i < len(s); i++ {
		ret[getKey(s[i])] = true
	}

	return ret
}

func Hash(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32())
}
