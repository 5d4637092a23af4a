package slots

// Invalid is returned for any slot outside every mapped range.
const Invalid int32 = -1

// Server slot numbers.
const (
	ServerSlotCharm       int32 = 0
	ServerSlotWaist       int32 = 20
	ServerSlotPowerSource int32 = 21
	ServerSlotAmmo        int32 = 22
	ServerSlotGeneral1    int32 = 23
	ServerSlotGeneral8    int32 = 30
	ServerSlotGeneral10   int32 = 32
	ServerSlotCursor      int32 = 33

	ServerPossessionsCount int32 = 34

	ServerGeneralBagsBegin   int32 = 251
	ServerGeneralBags8End    int32 = 330
	ServerCursorBagBegin     int32 = 351
	ServerCursorBagEnd       int32 = 360
	ServerTributeBegin       int32 = 400
	ServerTributeEnd         int32 = 404
	ServerGuildTributeBegin  int32 = 450
	ServerGuildTributeEnd    int32 = 451
	ServerTradeskillCombine  int32 = 1000
	ServerBankBegin          int32 = 2000
	ServerBankEnd            int32 = 2023
	ServerBankBagsBegin      int32 = 2031
	ServerBankBagsEnd        int32 = 2270
	ServerSharedBankBegin    int32 = 2500
	ServerSharedBankEnd      int32 = 2501
	ServerSharedBankBagBegin int32 = 2531
	ServerSharedBankBagEnd   int32 = 2550
	ServerTradeBegin         int32 = 3000
	ServerTradeEnd           int32 = 3007
	ServerTradeBagsBegin     int32 = 3031
	ServerTradeBagsEnd       int32 = 3110
	ServerWorldBegin         int32 = 4000
	ServerWorldEnd           int32 = 4009
)

// Web client slot numbers.
const (
	WebSlotCharm    int32 = 0
	WebSlotWaist    int32 = 20
	WebSlotAmmo     int32 = 21
	WebSlotGeneral1 int32 = 22
	WebSlotGeneral8 int32 = 29
	WebSlotCursor   int32 = 30

	WebPossessionsCount int32 = 31

	WebGeneralBagsBegin int32 = 251
	WebGeneralBagsEnd   int32 = 330
	WebCursorBagBegin   int32 = 331
	WebCursorBagEnd     int32 = 340
	WebBankBegin        int32 = 2000
	WebBankEnd          int32 = 2015
	WebBankBagsBegin    int32 = 2031
	WebBankBagsEnd      int32 = 2190
)

// Inventory maps worn, general, bag, bank, trade and world container slots.
var Inventory = newMapping("inventory", []Range{
	{Begin: ServerSlotCharm, End: ServerSlotWaist + 1, Offset: 0},
	{Begin: ServerSlotAmmo, End: ServerSlotAmmo + 1, Offset: WebSlotAmmo - ServerSlotAmmo},
	{Begin: ServerSlotGeneral1, End: ServerSlotGeneral8 + 1, Offset: WebSlotGeneral1 - ServerSlotGeneral1},
	{Begin: ServerSlotCursor, End: ServerPossessionsCount + ServerSlotWaist + 1, Offset: WebSlotCursor - ServerSlotCursor},
	{Begin: ServerPossessionsCount + ServerSlotAmmo, End: ServerPossessionsCount + ServerSlotAmmo + 1, Offset: (WebPossessionsCount + WebSlotAmmo) - (ServerPossessionsCount + ServerSlotAmmo)},
	{Begin: ServerGeneralBagsBegin, End: ServerGeneralBags8End + 1, Offset: 0},
	{Begin: ServerCursorBagBegin, End: ServerCursorBagEnd + 1, Offset: WebCursorBagBegin - ServerCursorBagBegin},
	{Begin: ServerTributeBegin, End: ServerTributeEnd + 1, Offset: 0},
	{Begin: ServerGuildTributeBegin, End: ServerGuildTributeEnd + 1, Offset: 0},
	{Begin: ServerTradeskillCombine, End: ServerTradeskillCombine + 1, Offset: 0},
	{Begin: ServerBankBegin, End: WebBankEnd + 1, Offset: 0},
	{Begin: ServerBankBagsBegin, End: WebBankBagsEnd + 1, Offset: 0},
	{Begin: ServerSharedBankBegin, End: ServerSharedBankEnd + 1, Offset: 0},
	{Begin: ServerSharedBankBagBegin, End: ServerSharedBankBagEnd + 1, Offset: 0},
	{Begin: ServerTradeBegin, End: ServerTradeEnd + 1, Offset: 0},
	{Begin: ServerTradeBagsBegin, End: ServerTradeBagsEnd + 1, Offset: 0},
	{Begin: ServerWorldBegin, End: ServerWorldEnd + 1, Offset: 0},
})
