package strategy

import (
	"github.com/arsvincere/avin-sub002/internal/asset"
	"github.com/arsvincere/avin-sub002/internal/bus"
	"github.com/arsvincere/avin-sub002/internal/schema"
)

// Strategy is the trading logic driven by a run loop. Init is called
// once before the first event; Process after every bar has been folded
// into the asset; OrderEvent for every order state change.
//
// A strategy owns its trades. It reports lifecycle changes by pushing
// TradeOpened/TradeClosed actions to the queue it received in Init.
type Strategy interface {
	Name() string
	Init(actions *bus.Queue[bus.Action], account schema.Account, as *asset.Asset) error
	Process(as *asset.Asset)
	OrderEvent(e bus.Event)
}
