package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/spf13/viper"

	"github.com/mikekulinski/zkclient/pkg/zkclient"
)

const zkctlVersion = "0.1.0"

var out = log.New(os.Stdout, "", 0)

func main() {
	usage := `ZooKeeper control.

Connection settings are resolved from flags, then ZKCTL_* environment
variables, then ~/.zkctl.yaml, then defaults (127.0.0.1:2181, 5000ms).

Usage:
    zkctl ls <path> [options]
    zkctl stat <path> [options]
    zkctl get <path> [options]
    zkctl set <path> <data> [--node_version=<v>] [options]
    zkctl create <path> [<data>] [--ephemeral] [--sequential] [options]
    zkctl mkdirp <path> [<data>] [options]
    zkctl rm <path> [--recursive] [--node_version=<v>] [options]
    zkctl watch <path> [options]

Options:
    -h --help            Show this screen.
    --servers=<servers>  Comma-separated ensemble addresses.
    --timeout=<ms>       Session timeout in milliseconds.
    --node_version=<v>   Expected node version for conditional writes [default: -1].
    --ephemeral          Create the node as ephemeral.
    --sequential         Append a sequence counter to the node name.
    --recursive          Delete the whole subtree.`

	opts, err := docopt.ParseArgs(usage, os.Args[1:], zkctlVersion)
	if err != nil {
		log.Fatal(err)
	}

	client := connect(opts)
	defer client.Close()

	path, _ := opts.String("<path>")
	data, _ := opts.String("<data>")

	if ls_, _ := opts.Bool("ls"); ls_ {
		ls(client, path)
	} else if stat_, _ := opts.Bool("stat"); stat_ {
		stat(client, path)
	} else if get_, _ := opts.Bool("get"); get_ {
		get(client, path)
	} else if set_, _ := opts.Bool("set"); set_ {
		set(client, path, data, nodeVersion(opts))
	} else if create_, _ := opts.Bool("create"); create_ {
		create(client, path, data, createOptions(opts))
	} else if mkdirp_, _ := opts.Bool("mkdirp"); mkdirp_ {
		mkdirp(client, path, data)
	} else if rm_, _ := opts.Bool("rm"); rm_ {
		recursive, _ := opts.Bool("--recursive")
		rm(client, path, nodeVersion(opts), recursive)
	} else if watch_, _ := opts.Bool("watch"); watch_ {
		watch(client, path)
	}
}

// loadConfig resolves the connection settings that are not given as flags:
// ZKCTL_* environment variables first, then ~/.zkctl.yaml (or ./.zkctl.yaml),
// then defaults.
func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("servers", "127.0.0.1:2181")
	v.SetDefault("timeout_ms", 5000)

	v.SetConfigName(".zkctl")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("zkctl")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("reading config: %v", err)
		}
	}
	return v
}

func connect(opts docopt.Opts) *zkclient.Client {
	cfg := loadConfig()

	servers := cfg.GetString("servers")
	if s, err := opts.String("--servers"); err == nil && s != "" {
		servers = s
	}
	timeout := time.Duration(cfg.GetInt("timeout_ms")) * time.Millisecond
	if t, err := opts.String("--timeout"); err == nil && t != "" {
		ms, err := strconv.Atoi(t)
		if err != nil {
			log.Fatalf("invalid --timeout %q", t)
		}
		timeout = time.Duration(ms) * time.Millisecond
	}

	client, err := zkclient.Connect(strings.Split(servers, ","), zkclient.ConnectOptions{
		SessionTimeout: timeout,
	})
	if err != nil {
		log.Fatalf("connecting to %s: %v", servers, err)
	}
	return client
}

func nodeVersion(opts docopt.Opts) int32 {
	raw, err := opts.String("--node_version")
	if err != nil || raw == "" {
		return zkclient.AnyVersion
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("invalid --node_version %q", raw)
	}
	return int32(v)
}

func createOptions(opts docopt.Opts) zkclient.CreateOptions {
	ephemeral, _ := opts.Bool("--ephemeral")
	sequential, _ := opts.Bool("--sequential")
	return zkclient.CreateOptions{Ephemeral: ephemeral, Sequential: sequential}
}

func ls(client *zkclient.Client, path string) {
	children, ok, err := client.Children(path, zkclient.ChildrenOptions{})
	if err != nil {
		log.Fatalf("listing %s: %v", path, err)
	}
	if !ok {
		log.Fatalf("no node at %s", path)
	}
	for _, child := range children {
		out.Println(child)
	}
}

func stat(client *zkclient.Client, path string) {
	s, err := client.Exists(path, zkclient.ExistsOptions{})
	if err != nil {
		log.Fatalf("checking %s: %v", path, err)
	}
	if s == nil {
		log.Fatalf("no node at %s", path)
	}
	printStat(s)
}

func printStat(s *zkclient.Stat) {
	out.Printf("czxid: %d", s.Czxid)
	out.Printf("mzxid: %d", s.Mzxid)
	out.Printf("ctime: %s", s.Ctime.Format(time.RFC3339))
	out.Printf("mtime: %s", s.Mtime.Format(time.RFC3339))
	out.Printf("version: %d", s.Version)
	out.Printf("cversion: %d", s.Cversion)
	out.Printf("aversion: %d", s.Aversion)
	out.Printf("ephemeralOwner: %#x", s.EphemeralOwner)
	out.Printf("dataLength: %d", s.DataLength)
	out.Printf("numChildren: %d", s.NumChildren)
	out.Printf("pzxid: %d", s.Pzxid)
}

func get(client *zkclient.Client, path string) {
	data, s, err := client.Get(path, zkclient.GetOptions{})
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}
	out.Println(string(data))
	out.Printf("version: %d", s.Version)
}

func set(client *zkclient.Client, path, data string, version int32) {
	s, err := client.Set(path, []byte(data), version)
	if err != nil {
		log.Fatalf("writing %s: %v", path, err)
	}
	out.Printf("version: %d", s.Version)
}

func create(client *zkclient.Client, path, data string, opts zkclient.CreateOptions) {
	name, err := client.Create(path, []byte(data), opts)
	if err != nil {
		log.Fatalf("creating %s: %v", path, err)
	}
	if name == "" {
		log.Fatalf("node already exists at %s", path)
	}
	out.Println(name)
}

func mkdirp(client *zkclient.Client, path, data string) {
	name, err := client.CreateAll(path, []byte(data), zkclient.CreateOptions{})
	if err != nil {
		log.Fatalf("creating %s: %v", path, err)
	}
	out.Println(name)
}

func rm(client *zkclient.Client, path string, version int32, recursive bool) {
	var deleted bool
	var err error
	if recursive {
		deleted, err = client.DeleteAll(path)
	} else {
		deleted, err = client.Delete(path, version)
	}
	if err != nil {
		log.Fatalf("deleting %s: %v", path, err)
	}
	if !deleted {
		log.Fatalf("no node at %s", path)
	}
}

func watch(client *zkclient.Client, path string) {
	events := make(chan zkclient.Event, 1)
	s, err := client.Exists(path, zkclient.ExistsOptions{
		Watcher: func(ev zkclient.Event) {
			events <- ev
		},
	})
	if err != nil {
		log.Fatalf("watching %s: %v", path, err)
	}
	if s == nil {
		out.Printf("waiting for %s to be created", path)
	}

	ev := <-events
	out.Println(fmt.Sprintf("%s %s", ev.Type, ev.Path))
}
