package kernel

type JobTitle string

func (t JobTitle) String() string { return string(t) }
func (t JobTitle) IsEmpty() bool  { return string(t) == "" }

type JobRequirement string

func (r JobRequirement) String() string { return string(r) }

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

type BucketURL string

func (b BucketURL) String() string { return string(b) }
func (b BucketURL) IsEmpty() bool  { return string(b) == "" }
