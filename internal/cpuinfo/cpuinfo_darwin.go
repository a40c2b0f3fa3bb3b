package cpuinfo

import "golang.org/x/sys/unix"

func detectL1DataCacheSize() int {
	if v, err := unix.SysctlUint32("hw.l1dcachesize"); err == nil && v > 0 {
		return int(v)
	}
	return fallbackL1DataCacheSize
}

func detectL2CacheSize() int {
	if v, err := unix.SysctlUint32("hw.l2cachesize"); err == nil && v > 0 {
		return int(v)
	}
	return fallbackL2CacheSize
}
