//go:build !linux && !darwin

package cpuinfo

func detectL1DataCacheSize() int { return fallbackL1DataCacheSize }

func detectL2CacheSize() int { return fallbackL2CacheSize }
