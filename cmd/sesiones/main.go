// Command sesiones is an operator tool over the persisted session records:
// list who is logged in, or purge a session (forcing that browser back to
// the login screen on its next request).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Estefan29/frontend-eventos-sub000/internal/config"
	"github.com/Estefan29/frontend-eventos-sub000/internal/infra"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
)

func main() {
	listar := flag.Bool("listar", false, "listar sesiones persistidas")
	purgar := flag.String("purgar", "", "purgar la sesion con este ID")
	purgarTodas := flag.Bool("purgar-todas", false, "purgar todas las sesiones")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redis:", err)
		os.Exit(1)
	}
	ctx := context.Background()

	switch {
	case *purgar != "":
		if err := rdb.Del(ctx, session.KeyPrefix+*purgar).Err(); err != nil {
			fmt.Fprintln(os.Stderr, "purgar:", err)
			os.Exit(1)
		}
		fmt.Println("sesion purgada:", *purgar)

	case *purgarTodas:
		claves, err := rdb.Keys(ctx, session.KeyPrefix+"*").Result()
		if err != nil {
			fmt.Fprintln(os.Stderr, "purgar-todas:", err)
			os.Exit(1)
		}
		if len(claves) > 0 {
			if err := rdb.Del(ctx, claves...).Err(); err != nil {
				fmt.Fprintln(os.Stderr, "purgar-todas:", err)
				os.Exit(1)
			}
		}
		fmt.Printf("%d sesiones purgadas\n", len(claves))

	case *listar:
		claves, err := rdb.Keys(ctx, session.KeyPrefix+"*").Result()
		if err != nil {
			fmt.Fprintln(os.Stderr, "listar:", err)
			os.Exit(1)
		}
		for _, clave := range claves {
			data, err := rdb.Get(ctx, clave).Bytes()
			if err != nil {
				continue
			}
			var s session.Sesion
			if err := json.Unmarshal(data, &s); err != nil {
				continue
			}
			id := strings.TrimPrefix(clave, session.KeyPrefix)
			if s.Usuario != nil {
				fmt.Printf("%s\t%s\t%s\tautenticada=%t\n", id, s.Usuario.Email, s.Usuario.Rol, s.Autenticada)
			} else {
				fmt.Printf("%s\t(anonima)\n", id)
			}
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}
