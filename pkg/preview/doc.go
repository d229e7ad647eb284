// Package preview keeps uploaded images behind revocable references so that a
// page can show a preview of a selected photo without keeping the file.
//
// A reference is a random id and the URL it is served at. References live
// until they are revoked or replaced by a newer selection. MemoryStore evicts
// the least recently used object when full; RedisStore lets references expire
// after a period of inactivity and is shared by every instance.
//
//	store := preview.NewMemoryStore(256)
//	ref, err := store.Create(ctx, "me.png", "image/png", data)
//	// <img src={ref.URL}>
//	err = store.Revoke(ctx, ref.ID)
package preview
