package slots

// Corpse maps loot slots on a corpse. Corpses only ever hold worn and general inventory,
// so there are no identity ranges.
var Corpse = newMapping("corpse", []Range{
	{Begin: ServerSlotGeneral1, End: ServerSlotGeneral8 + 1, Offset: WebSlotGeneral1 - ServerSlotGeneral1},
	{Begin: ServerSlotCursor, End: ServerPossessionsCount + ServerSlotWaist + 1, Offset: WebSlotCursor - ServerSlotCursor},
	{Begin: ServerPossessionsCount + ServerSlotAmmo, End: ServerPossessionsCount + ServerSlotAmmo + 1, Offset: (WebPossessionsCount + WebSlotAmmo) - (ServerPossessionsCount + ServerSlotAmmo)},
})
