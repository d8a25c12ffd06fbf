package zkclient

import (
	"github.com/golang/glog"

	"github.com/go-zookeeper/zk"
)

// The wire client reports each RPC through a different native return shape.
// These adapters normalize every shape into a Result and hand it to the
// delivery func, so downstream code only ever sees the one record type.
// Service failures are logged here, at the point of detection, before being
// embedded in the record.

func logFailure(op, path string, err error) {
	if err != nil {
		glog.V(2).Infof("zk %s %s failed: %v", op, path, err)
	}
}

func stringCompletion(op, path string, ctx any, next func(Result)) func(string, error) {
	return func(name string, err error) {
		logFailure(op, path, err)
		next(Result{Err: err, Path: path, Ctx: ctx, Name: name})
	}
}

func statCompletion(op, path string, ctx any, next func(Result)) func(*zk.Stat, error) {
	return func(stat *zk.Stat, err error) {
		logFailure(op, path, err)
		next(Result{Err: err, Path: path, Ctx: ctx, Stat: statFromZK(stat)})
	}
}

func dataCompletion(op, path string, ctx any, next func(Result)) func([]byte, *zk.Stat, error) {
	return func(data []byte, stat *zk.Stat, err error) {
		logFailure(op, path, err)
		next(Result{Err: err, Path: path, Ctx: ctx, Data: data, Stat: statFromZK(stat)})
	}
}

func childrenCompletion(op, path string, ctx any, next func(Result)) func([]string, *zk.Stat, error) {
	return func(children []string, stat *zk.Stat, err error) {
		logFailure(op, path, err)
		next(Result{Err: err, Path: path, Ctx: ctx, Children: children, Stat: statFromZK(stat)})
	}
}

func aclCompletion(op, path string, ctx any, next func(Result)) func([]zk.ACL, *zk.Stat, error) {
	return func(acl []zk.ACL, stat *zk.Stat, err error) {
		logFailure(op, path, err)
		next(Result{Err: err, Path: path, Ctx: ctx, ACL: aclFromZK(acl), Stat: statFromZK(stat)})
	}
}

func voidCompletion(op, path string, ctx any, next func(Result)) func(error) {
	return func(err error) {
		logFailure(op, path, err)
		next(Result{Err: err, Path: path, Ctx: ctx})
	}
}
