package jobs

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestWithinGracePeriod(t *testing.T) {
	// 刚写入的对象在保护期内
	fresh := ulid.Make().String() + ".pdf"
	if !withinGracePeriod(fresh) {
		t.Errorf("fresh object %q should be within grace period", fresh)
	}

	// 两小时前的对象可以清理
	old := ulid.MustNew(ulid.Timestamp(time.Now().Add(-2*time.Hour)), nil)
	if withinGracePeriod(old.String() + ".zip") {
		t.Errorf("old object should be outside grace period")
	}

	// 解析不了的键按保守处理不删
	if !withinGracePeriod("legacy-object-name.bin") {
		t.Error("unparseable key should be treated as protected")
	}
}
