package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"net"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/idna"

	"stubdns/internal/dns"
)

func main() {
	var (
		server   = flag.String("server", "8.8.8.8:53", "DNS server HOST:PORT")
		name     = flag.String("name", "example.com", "Query name")
		qtype    = flag.Int("qtype", 1, "Query type (numeric, A=1)")
		timeout  = flag.Duration("timeout", 2*time.Second, "Timeout")
		recvSize = flag.Int("recv-size", 2048, "UDP receive buffer size")
		quiet    = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	resp, err := queryUDP(*server, *name, uint16(*qtype), *timeout, *recvSize)
	if err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "dnsquery error: %v\n", err)
		}
		os.Exit(1)
	}
	if *quiet {
		return
	}

	p, err := dns.ParsePacket(resp)
	if err != nil {
		fmt.Printf("received %d bytes (unparseable)\n", len(resp))
		return
	}

	fmt.Printf("id=%d rcode=%d answers=%d\n",
		p.Header.ID,
		p.Header.Flags.RCode,
		len(p.Answers),
	)

	rows := make([]string, 0, len(p.Answers))
	for _, rr := range p.Answers {
		rows = append(rows, formatRR(rr))
	}
	sort.Strings(rows)
	for _, s := range rows {
		fmt.Println(s)
	}
}

func queryUDP(server, name string, qtype uint16, timeout time.Duration, recvSize int) ([]byte, error) {
	addr, err := net.ResolveUDPAddr("udp", server)
	if err != nil {
		return nil, err
	}
	c, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	reqBytes, err := buildQuery(name, qtype)
	if err != nil {
		return nil, err
	}
	_ = c.SetDeadline(time.Now().Add(timeout))
	if _, err := c.Write(reqBytes); err != nil {
		return nil, err
	}
	buf := make([]byte, recvSize)
	n, err := c.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func buildQuery(name string, qtype uint16) ([]byte, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return nil, fmt.Errorf("name required")
	}

	// Internationalized names go on the wire in punycode form.
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return nil, fmt.Errorf("invalid name %q: %w", name, err)
	}

	p := dns.Packet{
		Header: dns.Header{
			ID:    uint16(rand.Uint32()),
			Flags: dns.Flags{RD: true},
		},
		Questions: []dns.Question{{Name: ascii, Type: qtype, Class: uint16(dns.ClassIN)}},
	}
	return p.Marshal()
}

func formatRR(rr dns.ResourceRecord) string {
	name := rr.Name
	if name == "" {
		name = "."
	}
	if ip, ok := rr.IPv4(); ok {
		return fmt.Sprintf("%s %d IN A %s", name, rr.TTL, ip.String())
	}
	return fmt.Sprintf("%s %d IN TYPE%d (%d bytes rdata)", name, rr.TTL, rr.Type, len(rr.Data))
}
