package discovery

import (
	"context"
	"net"
	"slices"
	"strings"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// MDNSBrowser finds vacuums announcing the miio service over mDNS.
type MDNSBrowser struct {
	config BrowserConfig

	mu      sync.Mutex
	stopped bool
	cancels []context.CancelFunc
}

// NewMDNSBrowser returns a browser for config. It does not touch the network
// until Browse is called.
func NewMDNSBrowser(config BrowserConfig) (*MDNSBrowser, error) {
	return &MDNSBrowser{
		config: config,
	}, nil
}

// Browse streams each vacuum once, the first time it is announced. Later
// announcements of the same instance from other interfaces only add
// addresses. The channel closes when ctx ends or Stop is called.
func (b *MDNSBrowser) Browse(ctx context.Context) (<-chan *Vacuum, error) {
	ctx, cancel := context.WithCancel(ctx)
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		cancel()
		out := make(chan *Vacuum)
		close(out)
		return out, nil
	}
	b.cancels = append(b.cancels, cancel)
	b.mu.Unlock()

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	agg := newAggregator(b.config.ModelPrefix)
	out := make(chan *Vacuum)

	go func() {
		defer close(out)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				v := agg.add(entry.Instance, entry.HostName, entry.Port, entry.Text, entryIPs(entry))
				if v == nil {
					continue
				}
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}

			case entry, ok := <-removed:
				if !ok {
					continue
				}
				agg.remove(entry.Instance, entryIPs(entry))

			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		_ = zeroconf.Browse(ctx, ServiceTypeMiio, Domain, entries, removed, b.clientOptions()...)
	}()

	return out, nil
}

// Find searches for the vacuum with the given device id.
func (b *MDNSBrowser) Find(ctx context.Context, did string) (*Vacuum, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}

	for {
		select {
		case v, ok := <-results:
			if !ok {
				return nil, ErrNotFound
			}
			if v.DeviceID == did {
				return v, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Stop cancels every running Browse. Browse calls after Stop return a closed
// channel.
func (b *MDNSBrowser) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
}

// clientOptions restricts the query to the configured interface. An unknown
// interface name falls back to all interfaces.
func (b *MDNSBrowser) clientOptions() []zeroconf.ClientOption {
	if b.config.Interface == "" {
		return nil
	}
	iface, err := net.InterfaceByName(b.config.Interface)
	if err != nil {
		return nil
	}
	return []zeroconf.ClientOption{zeroconf.SelectIfaces([]net.Interface{*iface})}
}

func entryIPs(entry *zeroconf.ServiceEntry) []net.IP {
	ips := make([]net.IP, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	ips = append(ips, entry.AddrIPv4...)
	return append(ips, entry.AddrIPv6...)
}

// aggregator merges announcements of the same instance seen on several
// interfaces. It is used from one goroutine.
type aggregator struct {
	prefix   string
	services map[string]*Vacuum
}

func newAggregator(prefix string) *aggregator {
	return &aggregator{prefix: prefix, services: make(map[string]*Vacuum)}
}

// add records an announcement and returns the vacuum when it is new.
func (a *aggregator) add(instance, host string, port int, text []string, ips []net.IP) *Vacuum {
	v := toVacuum(instance, host, port, text, ips)
	if v == nil || !strings.HasPrefix(v.Model, a.prefix) {
		return nil
	}
	if existing, found := a.services[v.InstanceName]; found {
		existing.Addresses = mergeAddresses(existing.Addresses, v.Addresses)
		return nil
	}
	a.services[v.InstanceName] = v
	return v
}

// remove drops addresses that went away and forgets the instance when none
// remain.
func (a *aggregator) remove(instance string, ips []net.IP) {
	existing, found := a.services[instance]
	if !found {
		return
	}
	existing.Addresses = removeAddresses(existing.Addresses, ips)
	if len(existing.Addresses) == 0 {
		delete(a.services, instance)
	}
}

// toVacuum converts an announcement. Instances that do not follow the miio
// naming scheme are skipped.
func toVacuum(instance, host string, port int, text []string, ips []net.IP) *Vacuum {
	model, did, err := ParseInstance(instance)
	if err != nil {
		return nil
	}
	txt := StringsToTXTRecords(text)

	addrs := make([]string, 0, len(ips))
	for _, ip := range ips {
		addrs = append(addrs, ip.String())
	}
	if port == 0 {
		port = DefaultPort
	}

	return &Vacuum{
		InstanceName: instance,
		Host:         host,
		Port:         uint16(port),
		Addresses:    addrs,
		Model:        model,
		DeviceID:     did,
		MAC:          strings.ToUpper(txt[TXTKeyMAC]),
	}
}

// mergeAddresses appends the addresses not yet known.
func mergeAddresses(existing, added []string) []string {
	for _, addr := range added {
		if !slices.Contains(existing, addr) {
			existing = append(existing, addr)
		}
	}
	return existing
}

// removeAddresses drops every address that was withdrawn.
func removeAddresses(addresses []string, ips []net.IP) []string {
	return slices.DeleteFunc(addresses, func(addr string) bool {
		return slices.ContainsFunc(ips, func(ip net.IP) bool { return ip.String() == addr })
	})
}

var _ Browser = (*MDNSBrowser)(nil)
