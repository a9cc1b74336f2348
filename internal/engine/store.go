package engine

// Dict assigns dense ids (0..N) to keys in first-seen order.
// Iterating ids in ascending order therefore replays insertion order.
type Dict struct {
	ids  map[string]int32
	keys []string
}

func NewDict() *Dict {
	return &Dict{ids: make(map[string]int32)}
}

// ID returns the id of key, assigning the next free id on first sight.
func (d *Dict) ID(key string) int32 {
	if id, ok := d.ids[key]; ok {
		return id
	}
	id := int32(len(d.keys))
	d.keys = append(d.keys, key)
	d.ids[key] = id
	return id
}

func (d *Dict) Lookup(key string) (int32, bool) {
	id, ok := d.ids[key]
	return id, ok
}

func (d *Dict) Key(id int32) string {
	return d.keys[id]
}

func (d *Dict) Len() int {
	return len(d.keys)
}

// bucketStore keeps buckets in struct-of-arrays form:
// the Dict id of a key indexes its bucket.
type bucketStore[T any] struct {
	dict    *Dict
	buckets [][]T
}

func newBucketStore[T any]() *bucketStore[T] {
	return &bucketStore[T]{dict: NewDict()}
}

func (s *bucketStore[T]) add(key string, item T) {
	id := s.dict.ID(key)
	if int(id) == len(s.buckets) {
		s.buckets = append(s.buckets, nil)
	}
	s.buckets[id] = append(s.buckets[id], item)
}

func (s *bucketStore[T]) size() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// groups unpacks the store into an ordered Groups value.
func (s *bucketStore[T]) groups() Groups[T] {
	g := Groups[T]{
		buckets: make([]Bucket[T], len(s.buckets)),
		index:   make(map[string]int, len(s.buckets)),
	}
	for i, items := range s.buckets {
		key := s.dict.Key(int32(i))
		g.buckets[i] = Bucket[T]{Key: key, Items: items}
		g.index[key] = i
	}
	return g
}
