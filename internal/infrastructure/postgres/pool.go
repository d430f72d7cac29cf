package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"

	"github.com/jhoicas/Catalogo-api/pkg/config"
)

const (
	applicationName = "catalogo-api"
	defaultPGPort   = 5432

	// Los reportes leen dentro de una transacción REPEATABLE READ; si el proceso la abandona,
	// PostgreSQL la cierra pasado este plazo y libera el snapshot.
	idleInTxTimeout = 30 * time.Second
)

var errNoIPv4 = errors.New("sin dirección IPv4")

// ipv4Lookup resuelve un host a una IPv4. Se inyecta para poder probar la configuración sin DNS.
type ipv4Lookup func(ctx context.Context, host string) (string, error)

// NewPool crea el pool del catálogo, registra el códec NUMERIC ↔ decimal y comprueba la conexión.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(ctx, cfg, lookupIPv4)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapErr("crear pool", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapErr("ping DB", err)
	}
	return pool, nil
}

// newPoolConfig arma la configuración sin abrir conexiones. El host se fija a su IPv4 cuando
// existe (contenedores sin IPv6); si no se puede resolver se deja tal cual.
func newPoolConfig(ctx context.Context, cfg config.DBConfig, lookup ipv4Lookup) (*pgxpool.Config, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		withIP := cfg
		if ip, err := lookup(ctx, cfg.Host); err == nil {
			withIP.Host = ip
		}
		dsn = withIP.DSN()
	} else {
		dsn = pinURLHost(ctx, dsn, lookup)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.ConnConfig.DialFunc = ipv4Dialer(lookup)
	params := poolConfig.ConnConfig.RuntimeParams
	params["application_name"] = applicationName
	params["idle_in_transaction_session_timeout"] = strconv.FormatInt(idleInTxTimeout.Milliseconds(), 10)

	// Cada petición de reporte retiene una conexión mientras lee su snapshot.
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 && cfg.MinConns <= int(poolConfig.MaxConns) {
		poolConfig.MinConns = int32(cfg.MinConns)
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 15 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}

func ipv4Dialer(lookup ipv4Lookup) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		var d net.Dialer
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}
		ip, err := lookup(ctx, host)
		if err != nil {
			return d.DialContext(ctx, network, addr)
		}
		return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
	}
}

// pinURLHost sustituye el host de DATABASE_URL por su IPv4 y completa el puerto por defecto.
func pinURLHost(ctx context.Context, rawURL string, lookup ipv4Lookup) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	ip, err := lookup(ctx, u.Hostname())
	if err != nil {
		return rawURL
	}
	port := u.Port()
	if port == "" {
		port = strconv.Itoa(defaultPGPort)
	}
	u.Host = net.JoinHostPort(ip, port)
	return u.String()
}

// lookupIPv4 usa el resolver del sistema y, si falla, un DNS público: dentro de Docker el
// resolver local puede devolver solo registros AAAA.
func lookupIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", errNoIPv4
	}
	if ip, err := firstIPv4(net.DefaultResolver.LookupIP(ctx, "ip4", host)); err == nil {
		return ip, nil
	}
	public := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	return firstIPv4(public.LookupIP(ctx, "ip4", host))
}

func firstIPv4(ips []net.IP, err error) (string, error) {
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", errNoIPv4
}
