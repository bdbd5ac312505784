// Package item defines Item, the named resource that recipes consume and
// produce.
//
// Items are immutable values keyed by name. Maps throughout the catalog use
// Item.Key (the name) rather than the struct itself:
//
//	ore := item.New("Ferrium Ore", "ItemIcons/Natural_Resources_Icons/Ferrium_Ore.png")
//	water := item.New("Clean Water", "ItemIcons/Natural_Resources_Icons/Clean_Water.png", item.WithFluid())
//	battery := item.New("LC Wuling Battery", "", item.WithStockBillWuling(25))
//
// An item records at most one meaningful stock bill, one per region.
// StockBill returns whichever is set, preferring Valley IV.
package item
